// Package config loads runtime settings for the PR Directory CLI.
package config

import "time"

// Config holds runtime settings for the PR Directory CLI.
//
// Fields:
//   - EndpointURL: URL of the spreadsheet script endpoint.
//   - DatabasePath: path of the local SQLite fallback database.
//   - RequestTimeout: per-request bound for remote calls.
//   - RefetchDelay: how long after an optimistic write the delayed
//     reconciliation fetch is scheduled.
type Config struct {
	EndpointURL    string
	DatabasePath   string
	RequestTimeout time.Duration
	RefetchDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:8080/exec"
	c.DatabasePath = "prdir.db"
	c.RequestTimeout = 15 * time.Second
	c.RefetchDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file (if
// given) and command-line flags. Later sources take precedence over earlier
// ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
