/*
handlers_test.go - HTTP tests for the reward API

Tests for:
- Calculation endpoint (both formulas, guards, bad input)
- Defaults seeded from the handler clock
- Formula listing
*/
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/epoch-rewards/factory"
	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

const referenceBody = `{
	"staked_amount": 10000,
	"start_date": "2024-01-01",
	"end_date": "2024-01-31",
	"monthly_reward_rate": 10.5,
	"profit_share": 101591068,
	"market_cap": 3753480698
}`

func newTestServer(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	h := NewHandler(generic.CurrencyPHP, rewards.FormulaRateScaled)
	h.Now = func() time.Time { return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC) }
	return h, NewRouter(h, []string{"http://localhost:5173"})
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// =============================================================================
// CALCULATE
// =============================================================================

func TestCalculate_RateScaled(t *testing.T) {
	// GIVEN: The form's reference values
	_, srv := newTestServer(t)

	// WHEN: Posting them
	rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", referenceBody)

	// THEN: The reward and its intermediates come back
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CalculationDTO](t, rec)

	assert.Equal(t, "rate_scaled", got.Formula)
	assert.False(t, got.Deprecated)
	assert.InDelta(t, 28.41912080614621, got.Reward, 1e-9)
	assert.Equal(t, "28.42", got.RewardDisplay)
	assert.Equal(t, "PHP", got.Currency)
	assert.Equal(t, 30.0, got.StakeDurationDays)
	assert.InDelta(t, 0.0270658293, got.ProfitShareFactor, 1e-9)
	assert.InDelta(t, 0.0028419121, got.AdjustedRate, 1e-9)
	assert.Equal(t, "2024-01-01", got.Inputs.StartDate)
}

func TestCalculate_DurationScaledIsFlaggedDeprecated(t *testing.T) {
	_, srv := newTestServer(t)
	body := strings.Replace(referenceBody, `"market_cap": 3753480698`, `"market_cap": 3753480698, "formula": "duration_scaled"`, 1)

	rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CalculationDTO](t, rec)
	assert.Equal(t, "duration_scaled", got.Formula)
	assert.True(t, got.Deprecated)
	assert.Equal(t, "8119.75", got.RewardDisplay)
	assert.Zero(t, got.AdjustedRate)
}

func TestCalculate_HandlerDefaultFormula(t *testing.T) {
	h, srv := newTestServer(t)
	h.DefaultFormula = rewards.FormulaDurationScaled

	rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", referenceBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "duration_scaled", decode[CalculationDTO](t, rec).Formula)
}

func TestCalculate_InvalidAmountsAreZeroNotErrors(t *testing.T) {
	// GIVEN: A form mid-edit, market cap cleared and window inverted
	_, srv := newTestServer(t)
	bodies := []string{
		strings.Replace(referenceBody, `"market_cap": 3753480698`, `"market_cap": 0`, 1),
		strings.Replace(referenceBody, `"end_date": "2024-01-31"`, `"end_date": "2024-01-01"`, 1),
		strings.Replace(referenceBody, `"staked_amount": 10000`, `"staked_amount": -5`, 1),
		`{"start_date": "2024-01-01", "end_date": "2024-01-31"}`,
	}

	for _, body := range bodies {
		rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", body)

		// THEN: 200 with a zero reward
		require.Equal(t, http.StatusOK, rec.Code, body)
		got := decode[CalculationDTO](t, rec)
		assert.Zero(t, got.Reward)
		assert.Equal(t, "0.00", got.RewardDisplay)
	}
}

func TestCalculate_OutOfFloatRangeIsZero(t *testing.T) {
	// GIVEN: Amounts whose reward exceeds float64
	_, srv := newTestServer(t)
	body := `{
		"staked_amount": 1e300,
		"start_date": "2024-01-01",
		"end_date": "2024-01-31",
		"monthly_reward_rate": 10.5,
		"profit_share": 1e300,
		"market_cap": 1
	}`

	// WHEN: Posting them
	rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", body)

	// THEN: A full 200 response with a zero reward
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[CalculationDTO](t, rec)
	assert.Zero(t, got.Reward)
	assert.Equal(t, "0.00", got.RewardDisplay)
}

func TestWriteJSON_UnencodableValueIs500(t *testing.T) {
	rec := httptest.NewRecorder()

	writeJSON(rec, http.StatusOK, map[string]float64{"reward": math.Inf(1)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to encode response", decode[ErrorResponse](t, rec).Error)
}

func TestCalculate_BadRequests(t *testing.T) {
	_, srv := newTestServer(t)
	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed", `{"staked_amount":`, "invalid_payload"},
		{"unknown field", `{"stakedAmount": 1}`, "invalid_payload"},
		{"bad date", `{"start_date": "yesterday", "end_date": "2024-01-31"}`, "invalid_date"},
		{"unknown formula", `{"start_date": "2024-01-01", "end_date": "2024-01-31", "formula": "apr"}`, "unknown_formula"},
		{"oversized body", `{"staked_amount": 1` + strings.Repeat(" ", maxBodyBytes) + `}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decode[ErrorResponse](t, rec).Code)
		})
	}
}

// =============================================================================
// DEFAULTS & FORMULAS
// =============================================================================

func TestDefaults_SeededFromClock(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/rewards/defaults", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[factory.InputsJSON](t, rec)
	assert.Equal(t, "2026-10-18", got.StartDate)
	assert.Equal(t, "2026-11-17", got.EndDate)
	assert.Equal(t, 10000.0, got.StakedAmount)
	require.NotNil(t, got.MonthlyRewardRate)
	assert.Equal(t, 10.5, *got.MonthlyRewardRate)
	assert.Equal(t, "rate_scaled", got.Formula)
	assert.Equal(t, "PHP", got.Currency)
}

func TestDefaults_FeedBackIntoCalculate(t *testing.T) {
	_, srv := newTestServer(t)

	defaults := do(t, srv, http.MethodGet, "/api/rewards/defaults", "")
	rec := do(t, srv, http.MethodPost, "/api/rewards/calculate", defaults.Body.String())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "28.42", decode[CalculationDTO](t, rec).RewardDisplay)
}

func TestDefaults_UnknownFormula(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/rewards/defaults?formula=nope", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFormulas(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/rewards/formulas", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]FormulaDTO](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "rate_scaled", got[0].ID)
	assert.True(t, got[0].Default)
	assert.True(t, got[0].UsesRate)
	assert.True(t, got[1].Deprecated)
	assert.False(t, got[1].Default)
}

// =============================================================================
// ROUTER
// =============================================================================

func TestHealthAndIndex(t *testing.T) {
	_, srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/rewards/calculate")
}

func TestCORS_Preflight(t *testing.T) {
	_, srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/rewards/calculate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
