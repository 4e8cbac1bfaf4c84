package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // optional HCL settings file

	LogFormat string
	LogLevel  string
	Strict    bool
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
