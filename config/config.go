/*
config.go - Server settings from the environment

PURPOSE:
  Loads every server setting from REWARDS_* environment variables with
  envconfig, validates them once at startup, and configures the logrus
  standard logger.

VARIABLES:
  REWARDS_PORT, REWARDS_ALLOWED_ORIGINS, REWARDS_*_TIMEOUT
  REWARDS_LOG_LEVEL, REWARDS_LOG_FORMAT (text | json)
  REWARDS_CURRENCY, REWARDS_DEFAULT_FORMULA

SEE ALSO:
  - cmd/server/main.go: Applies the config
  - rewards/types.go: Formula names
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/warp/epoch-rewards/generic"
	"github.com/warp/epoch-rewards/rewards"
)

// Prefix is prepended to every variable name, e.g. REWARDS_PORT.
const Prefix = "REWARDS"

type Config struct {
	// --- HTTP ---
	Port            int           `envconfig:"PORT" default:"8080"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// --- Logging ---
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"` // text | json

	// --- Calculator ---
	Currency       string `envconfig:"CURRENCY" default:"PHP"`
	DefaultFormula string `envconfig:"DEFAULT_FORMULA" default:"rate_scaled"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s_PORT out of range: %d", Prefix, c.Port)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", Prefix, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%s_LOG_FORMAT must be text or json, got %q", Prefix, c.LogFormat)
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("%s_CURRENCY must not be empty", Prefix)
	}
	if _, err := rewards.ParseFormula(c.DefaultFormula); err != nil {
		return fmt.Errorf("%s_DEFAULT_FORMULA: %w", Prefix, err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s_SHUTDOWN_TIMEOUT must be > 0", Prefix)
	}
	return nil
}

// Formula returns the validated default formula.
func (c *Config) Formula() rewards.Formula {
	f, err := rewards.ParseFormula(c.DefaultFormula)
	if err != nil {
		return rewards.DefaultFormula
	}
	return f
}

func (c *Config) CurrencyCode() generic.Currency {
	return generic.Currency(strings.ToUpper(strings.TrimSpace(c.Currency)))
}

// SetupLogging applies the level and format to the standard logrus logger.
func (c *Config) SetupLogging() {
	if strings.ToLower(c.LogFormat) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
}
