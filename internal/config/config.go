// Package config loads runtime settings for the Vesper CLI. Values come
// from defaults, then an optional JSON file, then environment variables;
// later sources take precedence. Command-line flags overlay the result
// at the CLI layer.
package config

// Config holds runtime settings for the Vesper CLI.
//
// Fields:
//   - StorageBackend: which substrate keeps the document
//     ("sqlite", "file" or "memory").
//   - StoragePath: SQLite database file, or the profile directory for
//     the file backend. Ignored by the memory backend.
//   - LogLevel: zerolog level name ("debug", "info", "warn", "error").
//   - LogFormat: "console" for human-readable output, "json" for
//     structured lines.
type Config struct {
	StorageBackend string `json:"storage_backend" envconfig:"STORAGE_BACKEND"`
	StoragePath    string `json:"storage_path" envconfig:"STORAGE_PATH"`
	LogLevel       string `json:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat      string `json:"log_format" envconfig:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "sqlite"
	c.StoragePath = "vesper.db"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// Load constructs a Config: defaults, then the JSON file at jsonPath (if
// non-empty), then VESPER_* environment variables.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
