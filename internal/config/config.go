// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is where the local blob store keeps its files, the
	// process-local analog of browser local storage.
	DataDir string `koanf:"data_dir"`

	// Namespace prefixes the leaderboard storage key so rebranded
	// deployments sharing a machine keep separate histories.
	Namespace string `koanf:"namespace"`

	// BrandingFile optionally points at a white-label YAML file.
	BrandingFile string `koanf:"branding_file"`

	// MaxLeaderboardLimit caps leaderboard query limits.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		DataDir:             "data",
		Namespace:           "fiesta",
		MaxLeaderboardLimit: 100,
	}
}
