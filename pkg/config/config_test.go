package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fyers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FYERS_APP_ID", "FYERS_SECRET_KEY", "FYERS_REDIRECT_URI",
		"FYERS_ACCESS_TOKEN", "FYERS_SANDBOX", "FYERS_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
app_id: APP-1
secret_key: SEC
redirect_uri: https://example.com/cb
sandbox: true
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "APP-1", cfg.AppID)
	assert.True(t, cfg.Sandbox)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
app_id: FILE-APP
secret_key: SEC
redirect_uri: https://example.com/cb
`)
	t.Setenv("FYERS_APP_ID", "ENV-APP")
	t.Setenv("FYERS_SANDBOX", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ENV-APP", cfg.AppID)
	assert.True(t, cfg.Sandbox)
}

func TestEnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("FYERS_APP_ID", "APP")
	t.Setenv("FYERS_SECRET_KEY", "SEC")
	t.Setenv("FYERS_REDIRECT_URI", "https://example.com/cb")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "APP", cfg.AppID)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidateListsAllMissing(t *testing.T) {
	clearEnv(t)
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app_id")
	assert.Contains(t, err.Error(), "secret_key")
	assert.Contains(t, err.Error(), "redirect_uri")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
