package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nattavat/prdir/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// specified as plain integers (seconds / milliseconds) and copied into the
// runtime Config.
type JsonConfig struct {
	EndpointURL     string `json:"endpoint_url"`
	DatabasePath    string `json:"database_path"`
	RequestTimeoutS int    `json:"request_timeout_s"`
	RefetchDelayMs  int    `json:"refetch_delay_ms"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> env -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeoutS > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutS) * time.Second
	}
	if jc.RefetchDelayMs > 0 {
		cfg.RefetchDelay = time.Duration(jc.RefetchDelayMs) * time.Millisecond
	}
}
