/*
scenarios.go - Scenario catalog handlers

PURPOSE:
  Serves the fixed scenario catalog from rewards/scenarios.go. Scenarios
  are read-only: running one calculates it, nothing is stored.

USAGE VIA API:
  GET  /api/scenarios
  GET  /api/scenarios/php-30-day
  POST /api/scenarios/php-30-day/run?formula=duration_scaled

SEE ALSO:
  - rewards/scenarios.go: Catalog definitions
  - handlers.go: Shared helpers
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/epoch-rewards/rewards"
)

// ListScenarios returns the scenario catalog.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := rewards.Scenarios()
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = toScenarioDTO(s, h.DefaultFormula)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns a single scenario.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, err := rewards.ScenarioByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(s, h.DefaultFormula))
}

// RunScenario calculates a scenario with the requested formula.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	s, err := rewards.ScenarioByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	formula, err := h.formulaFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ScenarioRunDTO{
		Scenario: toScenarioDTO(s, formula),
		Result:   h.calculate(r, formula, s.Inputs),
	})
}
