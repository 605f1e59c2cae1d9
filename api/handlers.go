/*
handlers.go - HTTP API handlers for the reward calculator

PURPOSE:
  Exposes the calculator to the browser form and other callers. Handles
  HTTP request/response and JSON serialization, and delegates the numbers
  to the rewards package.

ENDPOINTS:
  Rewards:
    POST   /api/rewards/calculate   Calculate a reward from form inputs
    GET    /api/rewards/defaults    Form defaults seeded from the clock
    GET    /api/rewards/formulas    Registered formulas

  Scenarios (scenarios.go):
    GET    /api/scenarios            List catalog scenarios
    GET    /api/scenarios/{id}       Scenario inputs
    POST   /api/scenarios/{id}/run   Calculate a scenario (?formula=)

ERROR HANDLING:
  The calculator itself never fails: invalid amounts or windows give a
  zero reward with status 200. Errors only come from reading the request:
  - 400: Malformed JSON, bad dates, unknown formula
  - 404: Unknown scenario
  - 500: Anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Scenario catalog handlers
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/warp/epoch-rewards/factory"
	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

// maxBodyBytes bounds a calculation payload.
const maxBodyBytes = 64 << 10

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the settings shared by all handlers. It carries no mutable
// state, so one value serves concurrent requests.
type Handler struct {
	Currency       generic.Currency
	DefaultFormula rewards.Formula

	// Now seeds form defaults. Replaced in tests.
	Now func() time.Time
}

// NewHandler creates a handler for the given currency and default formula.
func NewHandler(currency generic.Currency, defaultFormula rewards.Formula) *Handler {
	if currency == "" {
		currency = generic.CurrencyPHP
	}
	if defaultFormula == "" {
		defaultFormula = rewards.DefaultFormula
	}
	return &Handler{
		Currency:       currency,
		DefaultFormula: defaultFormula,
		Now:            time.Now,
	}
}

// =============================================================================
// REWARD HANDLERS
// =============================================================================

// Calculate computes a reward from the posted form values.
// POST /api/rewards/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	ij, err := factory.DecodeInputsJSON(body)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if ij.Formula == "" {
		ij.Formula = string(h.DefaultFormula)
	}

	in, formula, err := factory.InputsFromJSON(ij)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.calculate(r, formula, in))
}

// Defaults returns the values a fresh form starts with.
// GET /api/rewards/defaults
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	formula, err := h.formulaFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	in := rewards.DefaultInputs(h.Now())
	in.Currency = h.Currency
	writeJSON(w, http.StatusOK, factory.ToJSON(in, formula))
}

// ListFormulas returns all registered formulas.
// GET /api/rewards/formulas
func (h *Handler) ListFormulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toFormulaDTOs(h.DefaultFormula))
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) calculate(r *http.Request, formula rewards.Formula, in rewards.Inputs) CalculationDTO {
	if in.Currency == "" {
		in.Currency = h.Currency
	}
	if formula.Deprecated() {
		log.WithFields(log.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"formula":    formula,
		}).Warn("Deprecated formula requested")
	}

	b := rewards.Calculate(formula, in)
	log.WithFields(log.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"formula":    formula,
		"days":       b.StakeDurationDays.String(),
		"reward":     b.Display(),
	}).Debug("Reward calculated")

	return toCalculationDTO(in, b)
}

func (h *Handler) formulaFromQuery(r *http.Request) (rewards.Formula, error) {
	name := r.URL.Query().Get("formula")
	if name == "" {
		return h.DefaultFormula, nil
	}
	return rewards.ParseFormula(name)
}

// writeJSON encodes before writing the status, so an unencodable value
// becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.WithError(err).Error("Failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.WithError(err).Debug("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps generic error sentinels to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error(), Code: errorCode(err)}
	switch {
	case generic.IsClientError(err):
		writeJSON(w, http.StatusBadRequest, resp)
	case generic.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, resp)
	default:
		log.WithError(err).Error("Unhandled error")
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

var errorCodes = []struct {
	code     string
	sentinel error
}{
	{"invalid_payload", generic.ErrInvalidPayload},
	{"invalid_date", generic.ErrInvalidDate},
	{"unknown_formula", generic.ErrUnknownFormula},
	{"scenario_not_found", generic.ErrScenarioNotFound},
}

func errorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return ""
}
