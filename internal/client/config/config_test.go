package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"prdir"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "prdir.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.RefetchDelay)
	assert.NotEmpty(t, cfg.EndpointURL)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	withArgs(t)
	t.Setenv("PRDIR_ENDPOINT_URL", "https://script.example/exec")
	t.Setenv("PRDIR_REFETCH_DELAY_MS", "2000")

	cfg := LoadConfig()
	assert.Equal(t, "https://script.example/exec", cfg.EndpointURL)
	assert.Equal(t, 2*time.Second, cfg.RefetchDelay)
}

func TestLoadConfig_EnvIgnoresGarbageNumbers(t *testing.T) {
	withArgs(t)
	t.Setenv("PRDIR_REQUEST_TIMEOUT_S", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_url": "https://json.example/exec",
		"database_path": "json.db",
		"request_timeout_s": 30,
		"refetch_delay_ms": 500
	}`), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "https://json.example/exec", cfg.EndpointURL)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.RefetchDelay)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_url": "https://json.example/exec"}`), 0o600))
	withArgs(t, "-c", path, "-a", "https://flag.example/exec", "-r", "100")

	cfg := LoadConfig()
	assert.Equal(t, "https://flag.example/exec", cfg.EndpointURL)
	assert.Equal(t, 100*time.Millisecond, cfg.RefetchDelay)
}
