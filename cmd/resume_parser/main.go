// Package main provides the entry point for the Resume Parser CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser CLI and HTTP API Server",
	Long:  "Resume Parser converts raw resume text and documents into structured JSON records and scores how complete they are, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCLIConfig resolves configuration for a command: values from the
// config file act as defaults for environment variables. Flag overrides
// are applied by the callers afterwards.
func loadCLIConfig(path string) (config.Config, error) {
	fileCfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	merged := config.FromEnv().MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
