package cli

import (
	"time"

	"flightdeck/internal/config"
	"flightdeck/internal/platform"
	"flightdeck/internal/poll"
)

// loadConfig is a test seam for config loading.
var loadConfig = config.Load

// newClient builds a platform client from the config.
func newClient(cfg config.Config) *platform.Client {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	client := platform.NewWithTimeout(cfg.Backend.BaseURL, timeout)
	if token := config.Token(cfg); token != "" {
		client.WithToken(token)
	}
	return client
}

// cadenceFromConfig maps configured millisecond intervals onto a cadence.
func cadenceFromConfig(cfg config.Config) poll.Cadence {
	return poll.Cadence{
		Deploying: time.Duration(cfg.Polling.DeployingIntervalMS) * time.Millisecond,
		Settled:   time.Duration(cfg.Polling.SettledIntervalMS) * time.Millisecond,
		Session:   time.Duration(cfg.Polling.SessionIntervalMS) * time.Millisecond,
		Stage:     time.Duration(cfg.Polling.StageIntervalMS) * time.Millisecond,
	}
}
