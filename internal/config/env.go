package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with the JANOL_* variables that are set.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// envConfigPath is the file location used when no flag names one.
func envConfigPath() string {
	return os.Getenv("JANOL_CONFIG")
}
