package app

import (
	"fmt"
	"strings"
)

// Config holds the ambient settings shared by every program.
type Config struct {
	LogFormat       string // "text" or "json"
	LogLevel        string // "debug", "info", "warn" or "error"
	HealthcheckPort int    // 0 disables the health check server
}

// Defaults used by the cli package when a flag is not given.
const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck-port %d: must be between 0 and 65535", cfg.HealthcheckPort)
	}

	return &cfg, nil
}
