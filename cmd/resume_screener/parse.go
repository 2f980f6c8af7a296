package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files or directories]",
	Short: "Screen resume files against a job description",
	Long:  "Extract candidate fields from PDF and DOCX resumes, score each one against a job description, and write the results as CSV. With --db-url the candidates are also stored.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseJD      string
	parseJDFile  string
	parseJDURL   string
	parseOutFile string
	parseDBURL   string
	parseNoNER   bool
)

func init() {
	parseCmd.Flags().StringVar(&parseJD, "jd", "", "Job description text")
	parseCmd.Flags().StringVar(&parseJDFile, "jd-file", "", "Path to a job description text file")
	parseCmd.Flags().StringVar(&parseJDURL, "jd-url", "", "URL of a job posting to fetch")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Path to output CSV file (default: stdout)")
	parseCmd.Flags().StringVar(&parseDBURL, "db-url", "", "Database URL for persisting candidates (overrides config and DATABASE_URL)")
	parseCmd.Flags().BoolVar(&parseNoNER, "disable-ner", false, "Skip entity recognition (names and companies degrade)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	jobDescription, err := resolveJobDescription(ctx, parseJD, parseJDFile, parseJDURL)
	if err != nil {
		return err
	}
	if jobDescription == "" && cfg.Job != "" {
		if jobDescription, err = ingestion.FromFile(cfg.Job); err != nil {
			return err
		}
	}
	if jobDescription == "" && cfg.JobURL != "" {
		if jobDescription, err = ingestion.FromURL(ctx, cfg.JobURL); err != nil {
			return err
		}
	}

	docs, err := collectDocuments(args)
	if err != nil {
		return err
	}

	var store pipeline.Store
	dbURL := parseDBURL
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if dbURL != "" {
		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		store = database
	}

	recognizer, err := entity.New(ctx, entity.Config{
		GeminiAPIKey: cfg.GeminiAPIKey,
		Disabled:     parseNoNER || cfg.DisableNER,
	})
	if err != nil {
		return fmt.Errorf("failed to create entity recognizer: %w", err)
	}

	runner := pipeline.NewRunner(store, fields.DefaultTaxonomy(), recognizer, log)
	result, err := runner.Run(ctx, docs, jobDescription)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if parseOutFile != "" {
		f, err := os.Create(parseOutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	if err := export.WriteParsed(out, result.Records); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Processed %d, skipped %d of %d documents\n",
		len(result.Records), len(result.Skipped), len(docs))
	return nil
}

// resolveJobDescription returns the job description from whichever flag was
// set. At most one source may be given; none at all is allowed and yields
// zero scores.
func resolveJobDescription(ctx context.Context, inline, file, url string) (string, error) {
	set := 0
	for _, v := range []string{inline, file, url} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return "", fmt.Errorf("--jd, --jd-file and --jd-url are mutually exclusive")
	}

	switch {
	case inline != "":
		return inline, nil
	case file != "":
		return ingestion.FromFile(file)
	case url != "":
		return ingestion.FromURL(ctx, url)
	default:
		return "", nil
	}
}

// collectDocuments reads the given files, expanding directories one level
// deep. Only .pdf and .docx entries are picked up from directories; files
// named explicitly are always included so unsupported ones get reported as
// skips instead of being silently ignored.
func collectDocuments(paths []string) ([]pipeline.Document, error) {
	var docs []pipeline.Document

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if !info.IsDir() {
			doc, err := readDocument(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext != ".pdf" && ext != ".docx" {
				continue
			}
			doc, err := readDocument(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no resume documents found")
	}
	return docs, nil
}

func readDocument(path string) (pipeline.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return pipeline.Document{Filename: filepath.Base(path), Data: data}, nil
}
