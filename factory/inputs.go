/*
Package factory converts form payloads into calculator inputs.

PURPOSE:
  The calculator works on typed values (float amounts, TimePoints). Callers
  send what a form holds: numbers and date strings. The factory bridges the
  two and is the only place where caller input can be rejected.

JSON SCHEMA:
  {
    "staked_amount": 10000,
    "start_date": "2024-01-01",
    "end_date": "2024-01-31",
    "monthly_reward_rate": 10.5,
    "profit_share": 101591068,
    "market_cap": 3753480698,
    "formula": "rate_scaled",
    "currency": "PHP"
  }

RULES:
  - Missing numbers are zero; the calculator then returns a zero reward
  - Dates are "YYYY-MM-DD" (UTC midnight) or RFC 3339 instants
  - Missing or unparseable dates are errors: an empty date would silently
    become year 1 and produce a huge window
  - "formula" defaults to rate_scaled, unknown names are errors
  - "monthly_reward_rate" may be omitted for duration_scaled

USAGE:
  in, formula, err := factory.ParseInputs(body)
  if err != nil {
      return err // generic.IsClientError(err) == true
  }
  result := rewards.Calculate(formula, in)

SEE ALSO:
  - rewards/types.go: Inputs
  - generic/errors.go: Error sentinels
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// InputsJSON is the JSON representation of a calculation request.
type InputsJSON struct {
	StakedAmount      float64  `json:"staked_amount"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	MonthlyRewardRate *float64 `json:"monthly_reward_rate,omitempty"`
	ProfitShare       float64  `json:"profit_share"`
	MarketCap         float64  `json:"market_cap"`
	Formula           string   `json:"formula,omitempty"`
	Currency          string   `json:"currency,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseInputs decodes a JSON payload and converts it.
func ParseInputs(data []byte) (rewards.Inputs, rewards.Formula, error) {
	ij, err := DecodeInputsJSON(data)
	if err != nil {
		return rewards.Inputs{}, "", err
	}
	return InputsFromJSON(ij)
}

// DecodeInputsJSON decodes a payload without converting it. Unknown fields
// are rejected so that typos in field names do not silently become zeros.
func DecodeInputsJSON(data []byte) (InputsJSON, error) {
	var ij InputsJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ij); err != nil {
		return InputsJSON{}, fmt.Errorf("%w: %v", generic.ErrInvalidPayload, err)
	}
	return ij, nil
}

// InputsFromJSON converts an already decoded payload.
func InputsFromJSON(ij InputsJSON) (rewards.Inputs, rewards.Formula, error) {
	formula, err := rewards.ParseFormula(ij.Formula)
	if err != nil {
		return rewards.Inputs{}, "", &generic.FieldError{Field: "formula", Err: err}
	}

	start, err := generic.ParseTimePoint(ij.StartDate)
	if err != nil {
		return rewards.Inputs{}, "", &generic.FieldError{Field: "start_date", Err: err}
	}
	finish, err := generic.ParseTimePoint(ij.EndDate)
	if err != nil {
		return rewards.Inputs{}, "", &generic.FieldError{Field: "end_date", Err: err}
	}

	in := rewards.Inputs{
		StakedAmount:      ij.StakedAmount,
		Duration:          generic.NewStakeDuration(start, finish),
		ProfitShareAmount: ij.ProfitShare,
		MarketCapAmount:   ij.MarketCap,
		Currency:          generic.Currency(strings.ToUpper(strings.TrimSpace(ij.Currency))),
	}
	if ij.MonthlyRewardRate != nil {
		in.MonthlyRewardRatePercent = *ij.MonthlyRewardRate
	}
	return in, formula, nil
}

// ToJSON renders inputs back into the payload shape, e.g. for form defaults.
func ToJSON(in rewards.Inputs, formula rewards.Formula) InputsJSON {
	ij := InputsJSON{
		StakedAmount: in.StakedAmount,
		StartDate:    in.Duration.Start.String(),
		EndDate:      in.Duration.Finish.String(),
		ProfitShare:  in.ProfitShareAmount,
		MarketCap:    in.MarketCapAmount,
		Formula:      string(formula),
		Currency:     string(in.Currency),
	}
	if formula.UsesRate() {
		r := in.MonthlyRewardRatePercent
		ij.MonthlyRewardRate = &r
	}
	return ij
}
