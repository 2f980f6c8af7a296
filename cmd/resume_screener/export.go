package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored candidates as CSV",
	RunE:  runExport,
}

var (
	exportOutFile  string
	exportDBURL    string
	exportQuery    string
	exportMinScore float64
	exportHasEmail string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Path to output CSV file (default: stdout)")
	exportCmd.Flags().StringVar(&exportDBURL, "db-url", "", "Database URL (overrides config and DATABASE_URL)")
	exportCmd.Flags().StringVar(&exportQuery, "q", "", "Substring filter over filename, name, email and skills")
	exportCmd.Flags().Float64Var(&exportMinScore, "min-score", 0, "Minimum predicted score (0-100)")
	exportCmd.Flags().StringVar(&exportHasEmail, "has-email", "either", "Filter by email presence: either, yes or no")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	filter := types.CandidateFilter{
		Query:    exportQuery,
		MinScore: exportMinScore,
		HasEmail: exportHasEmail,
	}
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	database, err := connectFromFlags(exportDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := database.ListCandidates(context.Background())
	if err != nil {
		return err
	}
	records = types.FilterCandidates(records, filter)

	var out io.Writer = os.Stdout
	if exportOutFile != "" {
		f, err := os.Create(exportOutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := export.WriteStored(out, records); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d candidates\n", len(records))
	return nil
}

// connectFromFlags resolves the database URL from the flag, config file and
// environment, then opens a connection and ensures the schema exists.
func connectFromFlags(flagURL string) (*db.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dbURL := flagURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL == "" {
		return nil, fmt.Errorf("a database URL is required (set --db-url, DATABASE_URL or database_url in the config file)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
