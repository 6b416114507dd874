package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "romscraper", cfg.Provider.Softname)
	assert.Equal(t, "wor", cfg.Preferences.Region)
	assert.Equal(t, "en", cfg.Preferences.Language)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.APIInterval)
	assert.Equal(t, 1200*time.Millisecond, cfg.RateLimit.AssetInterval)
	assert.Equal(t, 3, cfg.RateLimit.RetryThreshold)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROMSCRAPER_USER_ID", "tester")
	t.Setenv("ROMSCRAPER_USER_PASSWORD", "secret")
	t.Setenv("ROMSCRAPER_REGION", "jp")
	t.Setenv("ROMSCRAPER_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "tester", cfg.Provider.UserID)
	assert.Equal(t, "secret", cfg.Provider.UserPass)
	assert.Equal(t, "jp", cfg.Preferences.Region)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	content := `
provider:
  user_id: filetester
  user_password: filepass
preferences:
  region: us
  language: es
rate_limit:
  api_interval: 5s
  retry_threshold: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "filetester", cfg.Provider.UserID)
	assert.Equal(t, "us", cfg.Preferences.Region)
	assert.Equal(t, "es", cfg.Preferences.Language)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.APIInterval)
	assert.Equal(t, 1, cfg.RateLimit.RetryThreshold)
	// Untouched fields keep their defaults.
	assert.Equal(t, "romscraper", cfg.Provider.Softname)
}

func TestLoadFromFileExplicitMissingPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestEnvBeatsFile(t *testing.T) {
	content := `
provider:
  user_id: fromfile
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ROMSCRAPER_USER_ID", "fromenv")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "fromenv", cfg.Provider.UserID)
}

func TestHasUserCredentials(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.HasUserCredentials())

	cfg.Provider.UserID = "tester"
	assert.False(t, cfg.HasUserCredentials())

	cfg.Provider.UserPass = "secret"
	assert.True(t, cfg.HasUserCredentials())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing softname", func(c *Config) { c.Provider.Softname = "" }},
		{"negative api interval", func(c *Config) { c.RateLimit.APIInterval = -time.Second }},
		{"negative asset interval", func(c *Config) { c.RateLimit.AssetInterval = -time.Second }},
		{"negative retry threshold", func(c *Config) { c.RateLimit.RetryThreshold = -1 }},
		{"missing cache directory", func(c *Config) { c.Cache.Directory = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "shout" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Provider.UserID = "tester"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := DefaultConfig()
	require.NoError(t, reloaded.LoadFromFile(path))
	assert.Equal(t, "tester", reloaded.Provider.UserID)
}
