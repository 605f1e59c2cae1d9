package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(fixedNow)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalculate_Defaults(t *testing.T) {
	out, err := run(t, "calculate")

	require.NoError(t, err)
	assert.Equal(t, "Calculated Reward: 28.42 PHP\n", out)
}

func TestCalculate_ExplicitWindowVerbose(t *testing.T) {
	out, err := run(t, "calculate", "--start", "2024-01-01", "--finish", "2024-01-31", "-v")

	require.NoError(t, err)
	assert.Contains(t, out, "Stake duration days: 30")
	assert.Contains(t, out, "Profit share factor: 0.02706583")
	assert.Contains(t, out, "Adjusted rate:       0.00284191")
	assert.Contains(t, out, "Calculated Reward: 28.42 PHP")
}

func TestCalculate_DurationScaledWarns(t *testing.T) {
	out, err := run(t, "calculate", "--start", "2024-01-01", "--finish", "2024-01-31", "--formula", "duration_scaled")

	require.NoError(t, err)
	assert.Contains(t, out, "warning: duration_scaled is deprecated")
	assert.Contains(t, out, "Calculated Reward: 8119.75 PHP")
}

func TestCalculate_InvalidInputsPrintZero(t *testing.T) {
	out, err := run(t, "calculate", "--market-cap", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated Reward: 0.00 PHP")

	out, err = run(t, "calculate", "--start", "2024-02-01", "--finish", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated Reward: 0.00 PHP")
}

func TestCalculate_JSON(t *testing.T) {
	out, err := run(t, "calculate", "--start", "2024-01-01", "--finish", "2024-01-31", "--currency", "usd", "--json")
	require.NoError(t, err)

	var got breakdownJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "rate_scaled", got.Formula)
	assert.Equal(t, "28.42", got.RewardDisplay)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "30", got.StakeDurationDays)
}

func TestCalculate_Errors(t *testing.T) {
	_, err := run(t, "calculate", "--start", "soon")
	require.ErrorIs(t, err, generic.ErrInvalidDate)

	_, err = run(t, "calculate", "--formula", "apy")
	require.ErrorIs(t, err, generic.ErrUnknownFormula)
}

func TestDefaultsCmd(t *testing.T) {
	out, err := run(t, "defaults")
	require.NoError(t, err)

	assert.Contains(t, out, `"start_date": "2026-10-18"`)
	assert.Contains(t, out, `"end_date": "2026-11-17"`)
	assert.Contains(t, out, `"monthly_reward_rate": 10.5`)
}

func TestScenariosCmd(t *testing.T) {
	out, err := run(t, "scenarios")
	require.NoError(t, err)
	for _, s := range rewards.Scenarios() {
		assert.Contains(t, out, s.ID)
	}

	out, err = run(t, "scenarios", "php-30-day")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated Reward: 28.42 PHP")

	out, err = run(t, "scenarios", "same-day", "--formula", "duration_scaled")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated Reward: 0.00 PHP")

	_, err = run(t, "scenarios", "missing")
	require.ErrorIs(t, err, generic.ErrScenarioNotFound)
}
