// Package config loads pageflow's YAML configuration and applies
// environment overrides. Missing files are not an error; every field has a
// usable default, and validation happens once after all sources are merged.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seamlist/pageflow/internal/pager"
)

// Environment variables overriding file values.
const (
	EnvPageSize     = "PAGEFLOW_PAGE_SIZE"
	EnvSessionCount = "PAGEFLOW_SESSION_COUNT"
	EnvLogLevel     = "PAGEFLOW_LOG_LEVEL"
	EnvLogFormat    = "PAGEFLOW_LOG_FORMAT"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultSessionCount = 64
	DefaultFetchLatency = 250 * time.Millisecond
)

// Validation errors.
var (
	ErrInvalidPageSize     = errors.New("page_size must be >= 1")
	ErrInvalidSessionCount = errors.New("session_count must be >= 0")
	ErrInvalidFetchLatency = errors.New("fetch_latency must be >= 0")
	ErrInvalidLogFormat    = errors.New("logging.format must be \"console\" or \"json\"")
)

// Config is the root configuration for the demo browser.
type Config struct {
	// PageSize is the initial page-size cell value.
	PageSize int `yaml:"page_size"`

	// SessionCount is how many demo sessions to generate.
	SessionCount int `yaml:"session_count"`

	// FetchLatency is the simulated latency of the session store, so the
	// pending states of the pager are visible interactively.
	FetchLatency time.Duration `yaml:"fetch_latency"`

	// CacheTTL is how long fetched page metadata stays cached.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// Logging configures the zerolog output.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name ("debug", "info", ...).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		PageSize:     pager.DefaultPageSize,
		SessionCount: DefaultSessionCount,
		FetchLatency: DefaultFetchLatency,
		CacheTTL:     30 * time.Second,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path (if it exists), applies environment
// overrides on top, and validates the result. An empty path skips the file
// and uses defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file falls through to defaults.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	if c.SessionCount < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSessionCount, c.SessionCount)
	}
	if c.FetchLatency < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidFetchLatency, c.FetchLatency)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv(EnvSessionCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionCount = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}
