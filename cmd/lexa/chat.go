package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lexhaven/lexa/internal/agent"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chatCmd)
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Converse with the assistant about the matters",
	Long: `Start an interactive chat session. Each message is first classified:
data questions trigger a database lookup whose results feed the reply,
anything else is answered conversationally from recent history.

Type 'exit' or press Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	assistant := mustAssistant(cfg)

	fmt.Println("Chat mode. Ask quick questions about your legal data; type 'exit' to leave.")

	var history []agent.Exchange
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, err := assistant.Chat(cmd.Context(), message, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		fmt.Printf("Assistant: %s\n", reply)
		history = append(history, agent.Exchange{User: message, Assistant: reply})
	}

	return scanner.Err()
}
