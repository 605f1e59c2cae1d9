package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, generic.CurrencyPHP, cfg.CurrencyCode())
	assert.Equal(t, rewards.FormulaRateScaled, cfg.Formula())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("REWARDS_PORT", "9090")
	t.Setenv("REWARDS_LOG_LEVEL", "debug")
	t.Setenv("REWARDS_LOG_FORMAT", "json")
	t.Setenv("REWARDS_CURRENCY", "usd")
	t.Setenv("REWARDS_DEFAULT_FORMULA", "duration_scaled")
	t.Setenv("REWARDS_ALLOWED_ORIGINS", "https://rewards.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, generic.Currency("USD"), cfg.CurrencyCode())
	assert.Equal(t, rewards.FormulaDurationScaled, cfg.Formula())
	assert.Equal(t, []string{"https://rewards.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"REWARDS_PORT":             "70000",
		"REWARDS_LOG_LEVEL":        "loud",
		"REWARDS_LOG_FORMAT":       "xml",
		"REWARDS_DEFAULT_FORMULA":  "compound",
		"REWARDS_SHUTDOWN_TIMEOUT": "0s",
		"REWARDS_CURRENCY":         " ",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_UnparseablePort(t *testing.T) {
	t.Setenv("REWARDS_PORT", "eighty")

	_, err := Load()
	require.ErrorContains(t, err, "failed to load configuration")
}
