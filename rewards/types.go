/*
types.go - Calculator inputs, formulas and results

PURPOSE:
  Defines what goes into a reward calculation and what comes out of it.
  Inputs is a flat record of the form's six values. Breakdown carries the
  reward plus the intermediate figures, so callers can show how the number
  was reached.

FORMULAS:
  FormulaRateScaled (default):
    - Monthly/epoch rate applied to the profit-share factor
    - Normalized to the actual stake window by days/30

  FormulaDurationScaled (legacy):
    - Profit-share factor paid once per staked day, no rate input
    - Produces implausibly large rewards on multi-day windows
    - Kept for compatibility, reported as deprecated

SEE ALSO:
  - calculator.go: The formulas
  - defaults.go: Form defaults
*/
package rewards

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/epoch-rewards/generic"
)

// =============================================================================
// FORMULA
// =============================================================================

type Formula string

const (
	FormulaRateScaled     Formula = "rate_scaled"
	FormulaDurationScaled Formula = "duration_scaled"
)

// DefaultFormula is used when a caller does not name one.
const DefaultFormula = FormulaRateScaled

// Formulas lists every registered formula, default first.
func Formulas() []Formula {
	return []Formula{FormulaRateScaled, FormulaDurationScaled}
}

// ParseFormula resolves a formula name. The empty string selects DefaultFormula.
func ParseFormula(s string) (Formula, error) {
	switch Formula(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultFormula, nil
	case FormulaRateScaled:
		return FormulaRateScaled, nil
	case FormulaDurationScaled:
		return FormulaDurationScaled, nil
	}
	return "", fmt.Errorf("%w: %q", generic.ErrUnknownFormula, s)
}

func (f Formula) Description() string {
	switch f {
	case FormulaRateScaled:
		return "staked × (rate/100) × (profit share / market cap) × days / 30"
	case FormulaDurationScaled:
		return "staked × (profit share / market cap) × days"
	}
	return ""
}

// Deprecated reports whether the formula is only kept for compatibility.
func (f Formula) Deprecated() bool {
	return f == FormulaDurationScaled
}

// UsesRate reports whether the monthly reward rate takes part in the formula.
func (f Formula) UsesRate() bool {
	return f == FormulaRateScaled
}

// =============================================================================
// INPUTS
// =============================================================================

// Inputs are the values a caller collects from the form.
// MonthlyRewardRatePercent is ignored by FormulaDurationScaled.
type Inputs struct {
	StakedAmount             float64
	Duration                 generic.StakeDuration
	MonthlyRewardRatePercent float64
	ProfitShareAmount        float64
	MarketCapAmount          float64

	// Currency labels the resulting Amount. Empty means CurrencyPHP.
	Currency generic.Currency
}

func (in Inputs) currency() generic.Currency {
	if in.Currency == "" {
		return generic.CurrencyPHP
	}
	return in.Currency
}

// =============================================================================
// BREAKDOWN
// =============================================================================

// Breakdown is the result of a calculation. When a guard fails every
// intermediate is zero and Reward is a zero Amount.
type Breakdown struct {
	Formula Formula

	StakeDurationDays decimal.Decimal

	// ProfitShareFactor is profit share / market cap.
	ProfitShareFactor decimal.Decimal

	// AdjustedRate is (rate/100) × ProfitShareFactor. Zero for FormulaDurationScaled.
	AdjustedRate decimal.Decimal

	Reward generic.Amount
}

// Float64 returns the reward as a float, always finite and non-negative.
func (b Breakdown) Float64() float64 {
	f := b.Reward.Float64()
	if !generic.IsFinite(f) || !b.Reward.IsPositive() {
		return 0
	}
	return f
}

// Display renders the reward with two decimals, like the form does.
func (b Breakdown) Display() string {
	return b.Reward.Value.StringFixed(2)
}
