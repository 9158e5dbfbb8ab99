package config

import (
	"fmt"
	"os"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".flightdeck.yml"

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Token resolves the backend API token from the configured environment
// variable, empty when unset.
func Token(cfg Config) string {
	if cfg.Backend.TokenEnv == "" {
		return ""
	}
	return os.Getenv(cfg.Backend.TokenEnv)
}
