// Package main provides the lexa CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lexhaven/lexa/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// configPath is the --config flag value.
var configPath string

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lexa",
	Short: "AI assistant for a legal matters database",
	Long: `lexa loads a legal-matter export into a local SQLite database and
answers natural-language questions about it through role-specialized
language-model agents (SQL generator, data analyst, chat assistant).

Core features:
  - CSV loader with a built-in sample dataset for zero-config runs
  - Natural-language questions translated to SQL and summarized
  - Conversational chat mode with per-message data lookups
  - Raw SQL access and a single-page web UI

Configuration comes from lexa.yml, a .env file, and LEXA_* environment
variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "Path to the configuration file")
	rootCmd.Version = Version
}
