// Package config provides configuration loading and validation for the
// CLI and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultMaxFileSize bounds uploaded resume documents.
const DefaultMaxFileSize = 10 << 20 // 10 MiB

// DefaultPort is the HTTP server port when none is configured.
const DefaultPort = 8080

// Config represents configuration that can be loaded from a JSON file or
// the environment. All fields are optional; missing values use defaults
// or must be provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables persistence

	// Recognition
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // API key for name recognition; empty disables it
	GeminiModel  string `json:"gemini_model,omitempty"`   // Model override for the recognizer

	// Limits
	MaxFileSize int64 `json:"max_file_size,omitempty"` // Upload size cap in bytes

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Call after the CLI
// has loaded any .env file so both sources are visible.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if v, err := strconv.Atoi(port); err == nil {
			cfg.Port = v
		}
	}
	if size := os.Getenv("MAX_FILE_SIZE"); size != "" {
		if v, err := strconv.ParseInt(size, 10, 64); err == nil {
			cfg.MaxFileSize = v
		}
	}

	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("config error: 'max_file_size' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.MaxFileSize == 0 {
		if defaults.MaxFileSize != 0 {
			result.MaxFileSize = defaults.MaxFileSize
		} else {
			result.MaxFileSize = DefaultMaxFileSize
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
