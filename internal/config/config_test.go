package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE",
		"OPENAPI_BASE_URL", "OPENAPI_USER_AGENT", "OPENAPI_TIMEOUT_SECONDS", "OPENAPI_INSECURE_SKIP_VERIFY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8090", cfg.HTTP.Addr)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "https://18.143.168.167:49900", cfg.Backend.BaseURL)
	require.Equal(t, "openapi-mcp/1.0", cfg.Backend.UserAgent)
	require.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	require.True(t, cfg.Backend.InsecureSkipVerify, "certificate verification stays disabled by default for backend parity")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OPENAPI_BASE_URL", "https://backend.test:9000")
	t.Setenv("OPENAPI_TIMEOUT_SECONDS", "10")
	t.Setenv("OPENAPI_INSECURE_SKIP_VERIFY", "false")
	t.Setenv("CONFIG_FILE", "")
	os.Unsetenv("CONFIG_FILE")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://backend.test:9000", cfg.Backend.BaseURL)
	require.Equal(t, 10, cfg.Backend.TimeoutSeconds)
	require.False(t, cfg.Backend.InsecureSkipVerify)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("OPENAPI_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("CONFIG_FILE", "")
	os.Unsetenv("CONFIG_FILE")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Backend.TimeoutSeconds)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7070"
backend:
  base_url: "https://file.test"
  timeout_seconds: 12
`), 0o644))
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Addr, "file values win over env")
	require.Equal(t, "https://file.test", cfg.Backend.BaseURL)
	require.Equal(t, 12, cfg.Backend.TimeoutSeconds)
	require.Equal(t, "json", cfg.Log.Format, "untouched fields keep env/defaults")
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/bridge.yaml")

	_, err := Load()
	require.ErrorContains(t, err, "failed to read config file")
}
