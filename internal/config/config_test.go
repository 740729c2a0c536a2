package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "RUB", cfg.DefaultCurrency)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":             "9090",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
		"DEFAULT_CURRENCY": "EUR",
		"METRICS_ENABLED":  "false",
		"ALLOWED_ORIGIN":   "https://example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "https://example.com", cfg.AllowedOrigin)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number": {"PORT": "http"},
		"port out of range": {"PORT": "70000"},
		"log format":        {"LOG_FORMAT": "xml"},
		"currency":          {"DEFAULT_CURRENCY": "rubles"},
	}

	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(vars)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
