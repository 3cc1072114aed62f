package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/resumes",
		"gemini_api_key": "test-key",
		"max_file_size": 1048576,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("DATABASE_URL", "postgres://localhost/envdb")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := FromEnv()

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "postgres://localhost/envdb", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()

	assert.Zero(t, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	err := (&Config{Port: 70000}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")

	err = (&Config{Port: -1}).Validate()
	assert.Error(t, err)
}

func TestValidate_NegativeFileSize(t *testing.T) {
	err := (&Config{MaxFileSize: -1}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_file_size")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:        8080,
		MaxFileSize: DefaultMaxFileSize,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:         9090,
		DatabaseURL:  "postgres://localhost/defaults",
		GeminiAPIKey: "default-key",
	}

	partial := Config{
		GeminiAPIKey: "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-key", merged.GeminiAPIKey)

	// Default values should fill in empty fields
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/defaults", merged.DatabaseURL)
}

func TestMergeWithDefaults_BuiltinFallbacks(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, int64(DefaultMaxFileSize), merged.MaxFileSize)
}
