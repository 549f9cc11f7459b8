package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJson overlays cfg with values from the JSON file at path. An
// empty path means no file is loaded. Only keys present in the file
// override the current values.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}
