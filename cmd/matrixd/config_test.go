package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	prev := []string{flagConfig, flagAddr, flagLogLevel, flagLogFormat}
	t.Cleanup(func() {
		flagConfig, flagAddr, flagLogLevel, flagLogFormat = prev[0], prev[1], prev[2], prev[3]
	})
	flagConfig, flagAddr, flagLogLevel, flagLogFormat = "", "", "", ""
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.GetString(cfgKeyAddr))
	assert.Equal(t, "info", cfg.GetString(cfgKeyLogLevel))
	assert.Equal(t, "text", cfg.GetString(cfgKeyLogFormat))
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetFlags(t)
	flagAddr = ":9999"
	flagLogLevel = "debug"
	flagLogFormat = "json"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.GetString(cfgKeyAddr))
	assert.Equal(t, "debug", cfg.GetString(cfgKeyLogLevel))
	assert.Equal(t, "json", cfg.GetString(cfgKeyLogFormat))
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	resetFlags(t)
	flagConfig = "/no/such/config.yaml"

	_, err := loadConfig()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	t.Run("text and json formats", func(t *testing.T) {
		for _, format := range []string{"text", "json"} {
			flagLogFormat = format
			cfg, err := loadConfig()
			require.NoError(t, err)
			logger, err := newLogger(cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		flagLogLevel = "loud"
		flagLogFormat = "text"
		cfg, err := loadConfig()
		require.NoError(t, err)
		_, err = newLogger(cfg)
		require.Error(t, err)
	})
}
