// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening and job matching toolkit",
	Long:  "Resume Screener extracts structured candidate information from PDF and DOCX resumes, scores each candidate against a job description, and serves the results over a REST API.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadConfig assembles the effective configuration: built-in defaults,
// overridden by the config file, overridden by environment variables.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
