package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lexhaven/lexa/internal/web"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the single-page web UI",
	Long: `Start the web UI: three panels (predefined questions, custom query,
chat) backed by JSON endpoints over the same pipeline the CLI uses.
Chat history is kept by the page and sent with each request; the server
holds no session state.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	assistant := mustAssistant(cfg)

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	}))

	addr := cfg.Web.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := web.NewServer(assistant, predefinedQuestions, logger)
	logger.Info("serving web UI", "addr", addr)

	return http.ListenAndServe(addr, server.Handler())
}
