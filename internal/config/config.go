// Package config handles application configuration: an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default file locations and settings. Everything works zero-config
// with the built-in sample dataset.
const (
	DefaultConfigFile = "lexa.yml"
	DefaultCSVPath    = "litify_matters.csv"
	DefaultDBPath     = "legal_matters.db"
	DefaultListenAddr = ":8080"
)

// Config is the application configuration.
type Config struct {
	CSVPath string    `yaml:"csv_path"`
	DBPath  string    `yaml:"db_path"`
	LLM     LLMConfig `yaml:"llm"`
	Web     WebConfig `yaml:"web"`
}

// LLMConfig configures the completion provider.
type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// WebConfig configures the web UI server.
type WebConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		CSVPath: DefaultCSVPath,
		DBPath:  DefaultDBPath,
		Web:     WebConfig{Addr: DefaultListenAddr},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

// applyEnv overrides file values from the environment. A .env file
// loaded at command entry feeds these.
func (c *Config) applyEnv() {
	if v := os.Getenv("LEXA_CSV"); v != "" {
		c.CSVPath = v
	}
	if v := os.Getenv("LEXA_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LEXA_OLLAMA_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LEXA_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LEXA_LLM_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.LLM.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("LEXA_ADDR"); v != "" {
		c.Web.Addr = v
	}
}

// fillDefaults backfills anything the file or environment left empty.
func (c *Config) fillDefaults() {
	if c.CSVPath == "" {
		c.CSVPath = DefaultCSVPath
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.Web.Addr == "" {
		c.Web.Addr = DefaultListenAddr
	}
}

// LLMTimeout returns the configured completion timeout, or zero when
// the provider default should be used.
func (c *Config) LLMTimeout() time.Duration {
	if c.LLM.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}
