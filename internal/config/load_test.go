package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		if value == "" {
			original, had := os.LookupEnv(name)
			require.NoError(t, os.Unsetenv(name))
			if had {
				t.Cleanup(func() { os.Setenv(name, original) })
			}
			continue
		}
		t.Setenv(name, value)
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// TestLoadDefaults verifies that Load applies defaults when only the API key is set.
func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"DUALCLASS_LLM_GEMINI_API_KEY": "test-api-key",
		"GOOGLE_GEMINI_API_KEY":        "",
		"DUALCLASS_SERVER_PORT":        "",
		"DUALCLASS_SERVER_LOG_LEVEL":   "",
		"DUALCLASS_LLM_TEXT_MODEL":     "",
		"DUALCLASS_ASSETS_PUBLIC_DIR":  "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-3-pro-preview", cfg.LLM.TextModel)
	assert.Equal(t, "gemini-3-pro-image-preview", cfg.LLM.ImageModel)
	assert.Equal(t, "public", cfg.Assets.PublicDir)
	assert.Equal(t, "images/generated", cfg.Assets.GeneratedSubdir)
	assert.Equal(t, "data", cfg.Assets.DataSubdir)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"DUALCLASS_SERVER_PORT":        "9090",
		"DUALCLASS_SERVER_LOG_LEVEL":   "debug",
		"DUALCLASS_LLM_GEMINI_API_KEY": "env-api-key",
		"DUALCLASS_LLM_TEXT_MODEL":     "gemini-flash",
		"DUALCLASS_ASSETS_PUBLIC_DIR":  "/srv/public",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "env-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-flash", cfg.LLM.TextModel)
	assert.Equal(t, "/srv/public", cfg.Assets.PublicDir)
}

// TestLoadGoogleAPIKey verifies the unprefixed Gemini key is honoured.
func TestLoadGoogleAPIKey(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"DUALCLASS_LLM_GEMINI_API_KEY": "",
		"GOOGLE_GEMINI_API_KEY":        "google-key",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFromFile verifies config.yaml values and env precedence.
func TestLoadFromFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := []byte("server:\n  port: 7070\n  log_level: warn\nllm:\n  gemini_api_key: file-key\nassets:\n  public_dir: static\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	setupEnv(t, map[string]string{
		"DUALCLASS_LLM_GEMINI_API_KEY": "",
		"GOOGLE_GEMINI_API_KEY":        "",
		"DUALCLASS_SERVER_PORT":        "",
		"DUALCLASS_SERVER_LOG_LEVEL":   "error",
		"DUALCLASS_ASSETS_PUBLIC_DIR":  "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "environment should override the file")
	assert.Equal(t, "file-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "static", cfg.Assets.PublicDir)
}

// TestLoadFromMissingFile verifies an explicit path must exist.
func TestLoadFromMissingFile(t *testing.T) {
	chdirTemp(t)
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadValidationErrors verifies that invalid values fail validation.
func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "missing api key",
			envVars: map[string]string{
				"DUALCLASS_LLM_GEMINI_API_KEY": "",
				"GOOGLE_GEMINI_API_KEY":        "",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"DUALCLASS_LLM_GEMINI_API_KEY": "key",
				"DUALCLASS_SERVER_PORT":        "70000",
			},
		},
		{
			name: "unknown log level",
			envVars: map[string]string{
				"DUALCLASS_LLM_GEMINI_API_KEY": "key",
				"DUALCLASS_SERVER_LOG_LEVEL":   "verbose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			setupEnv(t, tt.envVars)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}
