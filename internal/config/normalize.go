package config

// Default cadences and limits applied by Normalize.
const (
	defaultDeployingIntervalMS = 2000
	defaultSettledIntervalMS   = 5000
	defaultSessionIntervalMS   = 3000
	defaultStageIntervalMS     = 5000
	defaultLimit               = 100
	defaultTimeoutSeconds      = 10
)

// Normalize fills in defaults for omitted fields.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Backend.TimeoutSeconds == 0 {
		cfg.Backend.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Polling.DeployingIntervalMS == 0 {
		cfg.Polling.DeployingIntervalMS = defaultDeployingIntervalMS
	}
	if cfg.Polling.SettledIntervalMS == 0 {
		cfg.Polling.SettledIntervalMS = defaultSettledIntervalMS
	}
	if cfg.Polling.SessionIntervalMS == 0 {
		cfg.Polling.SessionIntervalMS = defaultSessionIntervalMS
	}
	if cfg.Polling.StageIntervalMS == 0 {
		cfg.Polling.StageIntervalMS = defaultStageIntervalMS
	}
	if cfg.Polling.Limit == 0 {
		cfg.Polling.Limit = defaultLimit
	}
}
