package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// first merging a .env file when one exists in the working directory.
//
// Supported variables:
//
//	PRDIR_ENDPOINT_URL       spreadsheet script endpoint URL
//	PRDIR_DATABASE_PATH      local SQLite database path
//	PRDIR_REQUEST_TIMEOUT_S  remote request timeout in seconds
//	PRDIR_REFETCH_DELAY_MS   delayed re-fetch delay in milliseconds
func parseEnv(cfg *Config) {
	// Missing .env is the normal case; real environment variables still apply.
	_ = godotenv.Load()

	if v := os.Getenv("PRDIR_ENDPOINT_URL"); v != "" {
		cfg.EndpointURL = v
	}
	if v := os.Getenv("PRDIR_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PRDIR_REQUEST_TIMEOUT_S"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("PRDIR_REFETCH_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RefetchDelay = time.Duration(n) * time.Millisecond
		}
	}
}
