package config

import (
	"fmt"
	"net/url"
)

// maxLimit bounds one hook fetch; the backend rejects larger values.
const maxLimit = 100

// Validate checks a normalized config for contradictions.
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("config: unsupported version %d", cfg.Version)
	}
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("config: backend.base_url is required")
	}
	parsed, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: backend.base_url %q is not an absolute URL", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TimeoutSeconds < 0 {
		return fmt.Errorf("config: backend.timeout_seconds must not be negative")
	}
	for name, value := range map[string]int{
		"polling.deploying_interval_ms": cfg.Polling.DeployingIntervalMS,
		"polling.settled_interval_ms":   cfg.Polling.SettledIntervalMS,
		"polling.session_interval_ms":   cfg.Polling.SessionIntervalMS,
		"polling.stage_interval_ms":     cfg.Polling.StageIntervalMS,
	} {
		if value < 250 {
			return fmt.Errorf("config: %s must be at least 250ms", name)
		}
	}
	if cfg.Polling.Limit < 1 || cfg.Polling.Limit > maxLimit {
		return fmt.Errorf("config: polling.limit must be between 1 and %d", maxLimit)
	}
	return nil
}
