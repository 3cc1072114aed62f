package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing and scoring resumes.`,
	RunE:  runServe,
}

var (
	servePort        int
	serveDatabaseURL string
	serveConfigFile  string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL URL (overrides config and DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(serveConfigFile)
	if err != nil {
		return err
	}

	// Flags take precedence over environment and config file values
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDatabaseURL != "" {
		cfg.DatabaseURL = serveDatabaseURL
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		MaxFileSize:  cfg.MaxFileSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
