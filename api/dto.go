/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Request bodies reuse
  factory.InputsJSON so the form, the CLI and the API share one payload
  shape.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - ErrorResponse: Standard error body

SEE ALSO:
  - handlers.go: Uses these types
  - factory/inputs.go: InputsJSON
*/
package api

import (
	"github.com/warp/epoch-rewards/factory"
	"github.com/warp/epoch-rewards/rewards"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculationDTO is the result of one calculation.
type CalculationDTO struct {
	Formula           string             `json:"formula"`
	Deprecated        bool               `json:"deprecated,omitempty"`
	Reward            float64            `json:"reward"`
	RewardDisplay     string             `json:"reward_display"`
	Currency          string             `json:"currency"`
	StakeDurationDays float64            `json:"stake_duration_days"`
	ProfitShareFactor float64            `json:"profit_share_factor"`
	AdjustedRate      float64            `json:"adjusted_rate,omitempty"`
	Inputs            factory.InputsJSON `json:"inputs"`
}

// FormulaDTO describes a registered formula.
type FormulaDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	UsesRate    bool   `json:"uses_rate"`
	Deprecated  bool   `json:"deprecated"`
	Default     bool   `json:"default"`
}

// ScenarioDTO represents a catalog scenario.
type ScenarioDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Inputs      factory.InputsJSON `json:"inputs"`
}

// ScenarioRunDTO is a scenario together with its computed result.
type ScenarioRunDTO struct {
	Scenario ScenarioDTO    `json:"scenario"`
	Result   CalculationDTO `json:"result"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toCalculationDTO(in rewards.Inputs, b rewards.Breakdown) CalculationDTO {
	return CalculationDTO{
		Formula:           string(b.Formula),
		Deprecated:        b.Formula.Deprecated(),
		Reward:            b.Float64(),
		RewardDisplay:     b.Display(),
		Currency:          string(b.Reward.Currency),
		StakeDurationDays: b.StakeDurationDays.InexactFloat64(),
		ProfitShareFactor: b.ProfitShareFactor.InexactFloat64(),
		AdjustedRate:      b.AdjustedRate.InexactFloat64(),
		Inputs:            factory.ToJSON(in, b.Formula),
	}
}

func toScenarioDTO(s rewards.Scenario, formula rewards.Formula) ScenarioDTO {
	return ScenarioDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Inputs:      factory.ToJSON(s.Inputs, formula),
	}
}

func toFormulaDTOs(def rewards.Formula) []FormulaDTO {
	formulas := rewards.Formulas()
	dtos := make([]FormulaDTO, len(formulas))
	for i, f := range formulas {
		dtos[i] = FormulaDTO{
			ID:          string(f),
			Description: f.Description(),
			UsesRate:    f.UsesRate(),
			Deprecated:  f.Deprecated(),
			Default:     f == def,
		}
	}
	return dtos
}
