package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

const (
	cfgKeyAddr      = "addr"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// loadConfig builds the effective configuration. A missing config file is
// only an error when --config points at one explicitly.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAddr, ":8080")
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")

	v.SetEnvPrefix("MATRIXD")
	v.AutomaticEnv()

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flagAddr != "" {
		v.Set(cfgKeyAddr, flagAddr)
	}
	if flagLogLevel != "" {
		v.Set(cfgKeyLogLevel, flagLogLevel)
	}
	if flagLogFormat != "" {
		v.Set(cfgKeyLogFormat, flagLogFormat)
	}
	return v, nil
}

// newLogger builds the process logger: tint for human-readable text output,
// plain slog JSON otherwise.
func newLogger(v *viper.Viper) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(v.GetString(cfgKeyLogLevel)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", v.GetString(cfgKeyLogLevel))
	}

	switch strings.ToLower(v.GetString(cfgKeyLogFormat)) {
	case "text":
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", v.GetString(cfgKeyLogFormat))
	}
}
