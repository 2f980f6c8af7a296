package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored candidates",
	RunE:  runClear,
}

var (
	clearDBURL string
	clearYes   bool
)

func init() {
	clearCmd.Flags().StringVar(&clearDBURL, "db-url", "", "Database URL (overrides config and DATABASE_URL)")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deletion without prompting")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !clearYes {
		return fmt.Errorf("clear deletes every stored candidate; re-run with --yes to confirm")
	}

	database, err := connectFromFlags(clearDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	removed, err := database.ClearCandidates(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d candidates\n", removed)
	return nil
}
