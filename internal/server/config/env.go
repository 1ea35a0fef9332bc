package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config fields from environment variables using the `env`
// struct tags. Unset variables leave the current values untouched.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
