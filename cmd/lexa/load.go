package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Build or refresh the matters database from the CSV export",
	Long: `Load the CSV export into the local SQLite database.

If the CSV file does not exist, a built-in ten-row sample dataset is
written first. Rows are upserted by Id, so reloading the same export is
idempotent.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	s := mustLoadStore(cfg)

	count, err := s.Count()
	if err != nil {
		return err
	}

	fmt.Printf("loaded %d matters from %s into %s\n", count, cfg.CSVPath, cfg.DBPath)
	return nil
}
