package config

// Config is the parsed .flightdeck.yml document.
type Config struct {
	Version int           `yaml:"version"`
	Backend BackendConfig `yaml:"backend"`
	Polling PollingConfig `yaml:"polling"`
	View    ViewConfig    `yaml:"view"`
	Archive ArchiveConfig `yaml:"archive"`
}

// BackendConfig locates the platform backend.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	// TokenEnv names the environment variable holding the API token; the
	// token itself never lives in the config file.
	TokenEnv       string `yaml:"token_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// PollingConfig overrides the default poll cadences, in milliseconds.
type PollingConfig struct {
	DeployingIntervalMS int `yaml:"deploying_interval_ms"`
	SettledIntervalMS   int `yaml:"settled_interval_ms"`
	SessionIntervalMS   int `yaml:"session_interval_ms"`
	StageIntervalMS     int `yaml:"stage_interval_ms"`
	// Limit caps how many hooks one fetch returns.
	Limit int `yaml:"limit"`
}

// ViewConfig selects the grouping and filter behavior of the log views.
type ViewConfig struct {
	ShowPhaseFilter          bool `yaml:"show_phase_filter"`
	SplitStatusAndQueryHooks bool `yaml:"split_status_and_query_hooks"`
	NoColor                  bool `yaml:"no_color"`
}

// ArchiveConfig locates the local rollup archive database.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}
