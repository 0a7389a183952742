package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lexhaven/lexa/internal/agent"
	"github.com/lexhaven/lexa/internal/pipeline"
	"github.com/spf13/cobra"
)

// predefinedQuestions are the demo queries offered by the menu and the
// web UI.
var predefinedQuestions = []string{
	"How many personal injury cases do we have in the system?",
	"Which attorney is handling the most matters?",
	"What's the breakdown of case stages in our matters?",
	"Show me all matters that were settled pre-litigation",
	"Which clients have the most matters with us?",
	"How many matters were closed this year?",
	"What are the different record types we handle?",
	"Show me the average case duration for closed matters",
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu: predefined questions, custom queries, chat",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	assistant := mustAssistant(cfg)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n==============================")
		fmt.Println("LEGAL AI ASSISTANT - MAIN MENU")
		fmt.Println("==============================")
		fmt.Println("1. Predefined questions")
		fmt.Println("2. Custom query")
		fmt.Println("3. Chat mode")
		fmt.Println("4. Exit")
		fmt.Print("\nSelect an option (1-4): ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			menuPredefined(cmd, assistant, scanner)
		case "2":
			menuCustom(cmd, assistant, scanner)
		case "3":
			menuChat(cmd, assistant, scanner)
		case "4":
			fmt.Println("Goodbye.")
			return nil
		default:
			fmt.Println("Invalid choice. Please select 1, 2, 3, or 4.")
		}
	}
}

// askAndPrint runs a question through the query pipeline and prints the
// answer, reporting pipeline failures without leaving the menu.
func askAndPrint(cmd *cobra.Command, assistant *pipeline.Assistant, question string) {
	fmt.Printf("\nProcessing: %s\n", question)

	answer, err := assistant.Query(cmd.Context(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error processing query: %v\n", err)
		fmt.Fprintln(os.Stderr, "hint: check that the completion provider is running")
		return
	}

	fmt.Printf("\n%s\n", answer.Text)
}

func menuPredefined(cmd *cobra.Command, assistant *pipeline.Assistant, scanner *bufio.Scanner) {
	for {
		fmt.Println("\nAvailable demo queries:")
		for i, q := range predefinedQuestions {
			fmt.Printf("%d. %s\n", i+1, q)
		}
		fmt.Printf("\nEnter query number (1-%d) or 'back': ", len(predefinedQuestions))

		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == "back" {
			return
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(predefinedQuestions) {
			fmt.Printf("Invalid choice. Enter a number 1-%d or 'back'.\n", len(predefinedQuestions))
			continue
		}

		askAndPrint(cmd, assistant, predefinedQuestions[n-1])
	}
}

func menuCustom(cmd *cobra.Command, assistant *pipeline.Assistant, scanner *bufio.Scanner) {
	fmt.Println("\nAsk any question about your legal data in natural language.")

	for {
		fmt.Print("\nEnter your question (or 'back'): ")
		if !scanner.Scan() {
			return
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "back" {
			return
		}
		if question == "" {
			fmt.Println("Please enter a question.")
			continue
		}

		askAndPrint(cmd, assistant, question)
	}
}

func menuChat(cmd *cobra.Command, assistant *pipeline.Assistant, scanner *bufio.Scanner) {
	fmt.Println("\nChat mode. Type 'back' to return to the main menu.")

	var history []agent.Exchange
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			return
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "back" {
			return
		}
		if message == "" {
			fmt.Println("Please enter a message.")
			continue
		}

		reply, err := assistant.Chat(cmd.Context(), message, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error in chat: %v\n", err)
			continue
		}

		fmt.Printf("Assistant: %s\n", reply)
		history = append(history, agent.Exchange{User: message, Assistant: reply})
	}
}
