package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lexhaven/lexa/internal/store"
	"github.com/spf13/cobra"
)

var sqlJSON bool
var sqlCSV bool

func init() {
	rootCmd.AddCommand(sqlCmd)
	sqlCmd.Flags().BoolVar(&sqlJSON, "json", false, "Output JSON array")
	sqlCmd.Flags().BoolVar(&sqlCSV, "csv", false, "Output CSV")
}

var sqlCmd = &cobra.Command{
	Use:   "sql <statement>",
	Short: "Run raw SQL against the matters database",
	Long: `Execute a SQL statement directly, bypassing the agents. Unlike the
pipeline's executor, SQL errors are reported here.

Examples:
  lexa sql "SELECT COUNT(*) FROM matters"
  lexa sql "SELECT Attorney_Name, COUNT(*) AS n FROM matters GROUP BY Attorney_Name" --json
  lexa sql "SELECT Id, Display_Name FROM matters LIMIT 5" --csv`,
	Args: cobra.ExactArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	s := mustLoadStore(cfg)

	rows, err := s.Query(args[0])
	if err != nil {
		return fmt.Errorf("SQL error: %w", err)
	}

	switch {
	case sqlJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case sqlCSV:
		return outputCSV(rows)
	default:
		outputTable(rows)
		return nil
	}
}

// columnNames returns the row columns in a stable order.
func columnNames(rows []store.Row) []string {
	var cols []string
	for col := range rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// outputCSV writes rows as CSV to stdout.
func outputCSV(rows []store.Row) error {
	if len(rows) == 0 {
		return nil
	}

	cols := columnNames(rows)
	w := csv.NewWriter(os.Stdout)

	if err := w.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(cols))
		for i, col := range cols {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// outputTable writes rows as a formatted table to stdout.
func outputTable(rows []store.Row) {
	if len(rows) == 0 {
		fmt.Println("(0 rows)")
		return
	}

	cols := columnNames(rows)

	// Calculate column widths in runes, capped at 40.
	widths := make(map[string]int)
	for _, col := range cols {
		widths[col] = utf8.RuneCountInString(col)
	}
	for _, row := range rows {
		for _, col := range cols {
			if n := utf8.RuneCountInString(row[col]); n > widths[col] {
				widths[col] = n
			}
		}
	}
	for col := range widths {
		if widths[col] > 40 {
			widths[col] = 40
		}
	}

	var header []string
	for _, col := range cols {
		header = append(header, padRight(strings.ToUpper(col), widths[col]))
	}
	fmt.Println(strings.Join(header, "  "))

	for _, row := range rows {
		var line []string
		for _, col := range cols {
			line = append(line, padRight(truncate(row[col], widths[col]), widths[col]))
		}
		fmt.Println(strings.Join(line, "  "))
	}

	fmt.Printf("(%d rows)\n", len(rows))
}

// truncate shortens s to width runes, marking the cut with "...".
// Slicing by rune keeps multibyte values intact.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// padRight pads a string with spaces on the right to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
