package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// parseEnv overlays cfg with VESPER_* environment variables, e.g.
// VESPER_STORAGE_BACKEND=file. Unset variables leave the current values
// untouched.
func parseEnv(cfg *Config) error {
	if err := envconfig.Process("vesper", cfg); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}
