// Package config loads govec settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/philipparndt/govec/pkg/geometry"
)

// Config holds command configuration. Flags override these values.
type Config struct {
	// Format is the default format specifier for `show`; empty prints the display form.
	Format string `env:"GOVEC_FORMAT"`
	// Round is the default rounding precision for `show`; empty disables rounding.
	Round string `env:"GOVEC_ROUND"`
	// Debounce collapses bursts of file events in `run --watch`.
	Debounce time.Duration `env:"GOVEC_WATCH_DEBOUNCE" envDefault:"200ms"`
	Verbose  bool          `env:"GOVEC_VERBOSE"`
}

// Load parses Config from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
// Failures are configuration errors.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return geometry.WrapError(geometry.CodeConfiguration, fmt.Sprintf("parse env: %v", err), err)
	}
	return nil
}
