package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for parsing resumes, browsing stored candidates and pool analytics.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database URL is required (set DATABASE_URL or database_url in the config file)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	recognizer, err := entity.New(ctx, entity.Config{
		GeminiAPIKey: cfg.GeminiAPIKey,
		Disabled:     cfg.DisableNER,
	})
	if err != nil {
		return fmt.Errorf("failed to create entity recognizer: %w", err)
	}

	runner := pipeline.NewRunner(database, fields.DefaultTaxonomy(), recognizer, log)
	srv := server.New(server.Config{Port: cfg.Port}, database, runner, log)

	return srv.Start()
}
