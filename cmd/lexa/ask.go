package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askShowSQL bool

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().BoolVar(&askShowSQL, "show-sql", false, "Print the generated SQL before the answer")
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a one-shot natural-language question about the matters",
	Long: `Ask a question in natural language. The question is translated to SQL,
executed against the matters database, and the results are summarized
into a short answer.

Examples:
  lexa ask "How many personal injury cases do we have?"
  lexa ask --show-sql "Which attorney handles the most matters?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	assistant := mustAssistant(cfg)

	answer, err := assistant.Query(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("processing question: %w", err)
	}

	if askShowSQL {
		fmt.Printf("SQL: %s\n\n", answer.SQL)
	}
	fmt.Println(answer.Text)
	return nil
}
