package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"LEGISCAN_API_KEY",
	"API_KEY",
	"LEGISCAN_BASE_URL",
	"LEGISCAN_TIMEOUT",
	"LEGISCAN_STATE",
	"LEGISCAN_SESSION_ID",
	"LEGISCAN_YEAR",
	"SERVER_HOST",
	"SERVER_PORT",
	"PORT",
	"LOG_LEVEL",
}

// clearEnv unsets every variable Load reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEGISCAN_API_KEY", "test-api-key")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-api-key", cfg.LegiScan.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.LegiScan.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.LegiScan.Timeout)
	assert.Equal(t, "IN", cfg.LegiScan.State)
	assert.Equal(t, uint32(DefaultSessionID), cfg.LegiScan.SessionID)
	assert.Equal(t, time.Now().Year(), cfg.LegiScan.Year)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEGISCAN_API_KEY", "env-key")
	t.Setenv("LEGISCAN_BASE_URL", "http://localhost:9999/")
	t.Setenv("LEGISCAN_TIMEOUT", "5s")
	t.Setenv("LEGISCAN_STATE", "ca")
	t.Setenv("LEGISCAN_SESSION_ID", "2000")
	t.Setenv("LEGISCAN_YEAR", "2023")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.LegiScan.APIKey)
	assert.Equal(t, "http://localhost:9999/", cfg.LegiScan.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.LegiScan.Timeout)
	assert.Equal(t, "CA", cfg.LegiScan.State)
	assert.Equal(t, uint32(2000), cfg.LegiScan.SessionID)
	assert.Equal(t, 2023, cfg.LegiScan.Year)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFallbackEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("PORT", "3000")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.LegiScan.APIKey)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "legiscan.api_key is required")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"bad state":     {"LEGISCAN_STATE": "IND"},
		"bad port":      {"SERVER_PORT": "70000"},
		"bad log level": {"LOG_LEVEL": "verbose"},
		"bad base url":  {"LEGISCAN_BASE_URL": "not a url"},
		"bad timeout":   {"LEGISCAN_TIMEOUT": "-1s"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LEGISCAN_API_KEY", "test-api-key")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load(LoadOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("API_KEY=dotenv-key\nLEGISCAN_STATE=TX\n"), 0o600))

	t.Run("fills unset variables", func(t *testing.T) {
		cfg, err := Load(LoadOptions{EnvFile: envPath})
		require.NoError(t, err)
		assert.Equal(t, "dotenv-key", cfg.LegiScan.APIKey)
		assert.Equal(t, "TX", cfg.LegiScan.State)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		t.Setenv("LEGISCAN_API_KEY", "test-api-key")
		_, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
		require.NoError(t, err)
	})
}

func TestLoadEnvFileDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "real-key")
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("API_KEY=dotenv-key\n"), 0o600))

	cfg, err := Load(LoadOptions{EnvFile: envPath})
	require.NoError(t, err)
	assert.Equal(t, "real-key", cfg.LegiScan.APIKey)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	configYaml := `
legiscan:
  api_key: file-key
  state: OH
  timeout: 10s
server:
  port: 7070
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYaml), 0o600))

	t.Run("reads values", func(t *testing.T) {
		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.LegiScan.APIKey)
		assert.Equal(t, "OH", cfg.LegiScan.State)
		assert.Equal(t, 10*time.Second, cfg.LegiScan.Timeout)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("environment takes precedence", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9191")
		t.Setenv("LEGISCAN_API_KEY", "env-key")

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.LegiScan.APIKey)
		assert.Equal(t, 9191, cfg.Server.Port)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})
}
