package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexhaven/lexa/internal/config"
	"github.com/lexhaven/lexa/internal/llm"
	"github.com/lexhaven/lexa/internal/matter"
	"github.com/lexhaven/lexa/internal/pipeline"
	"github.com/lexhaven/lexa/internal/store"
)

// probeTimeout bounds the provider availability check; the probe is a
// cheap model-listing call, not a completion.
const probeTimeout = 5 * time.Second

// exitWithError prints an error to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLoadStore refreshes the database from the CSV snapshot and
// returns the store. A missing CSV is replaced with the built-in
// sample; a schema mismatch in the CSV is fatal.
func mustLoadStore(cfg *config.Config) *store.Store {
	created, err := matter.EnsureCSV(cfg.CSVPath)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if created {
		fmt.Fprintf(os.Stderr, "no export found, wrote sample dataset to %s\n", cfg.CSVPath)
	}

	matters, err := matter.ReadCSV(cfg.CSVPath)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	if _, err := s.Load(matters); err != nil {
		exitWithError(ExitError, "loading matters: %v", err)
	}

	return s
}

// newProvider builds the completion provider from configuration.
func newProvider(cfg *config.Config) *llm.OllamaProvider {
	var opts []llm.OllamaOption
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(cfg.LLM.BaseURL))
	}
	if cfg.LLM.Model != "" {
		opts = append(opts, llm.WithModel(cfg.LLM.Model))
	}
	if t := cfg.LLMTimeout(); t > 0 {
		opts = append(opts, llm.WithTimeout(t))
	}
	return llm.NewOllamaProvider(opts...)
}

// probeProvider checks that the completion provider is reachable
// before any model-touching command runs.
func probeProvider(provider *llm.OllamaProvider) error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	return provider.IsAvailable(ctx)
}

// mustProvider builds the completion provider and exits if it is not
// reachable.
func mustProvider(cfg *config.Config) *llm.OllamaProvider {
	provider := newProvider(cfg)
	if err := probeProvider(provider); err != nil {
		exitWithError(ExitLLMError, "completion provider not reachable: %v\nhint: start ollama ('ollama serve') or point LEXA_OLLAMA_URL at a running instance", err)
	}
	return provider
}

// mustAssistant wires the full pipeline: store refreshed from CSV plus
// the completion provider.
func mustAssistant(cfg *config.Config) *pipeline.Assistant {
	s := mustLoadStore(cfg)
	return pipeline.New(s, mustProvider(cfg))
}
