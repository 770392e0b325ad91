package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the diary CLI.
//
// Fields:
//   - ServerURL: base URL of the diary HTTP API.
//   - RequestTimeout: per-request timeout of the API client.
//   - DatabasePath: SQLite file keeping the session between runs.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "diary.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the environment (and an optional
// .env file), a JSON file and command-line flags. Later sources take
// precedence. args are the program arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, defaultEnvFile); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
