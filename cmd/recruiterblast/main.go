// Package main provides the recruiterblast CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "recruiterblast",
	Short: "Find recruiter contacts behind a LinkedIn job post",
	Long: "recruiterblast resolves a LinkedIn job post into its company, the " +
		"recruiters working there, their likely email addresses, and one-click " +
		"compose links for reaching out.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the environment, then points slog at
// stderr so stdout stays clean for JSON output.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Init(os.Stderr, cfg.Env)
	return cfg, nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
