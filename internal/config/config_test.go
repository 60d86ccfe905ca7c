package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
page_size: 12
session_count: 10
fetch_latency: 50ms
cache_ttl: 5s
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 10, cfg.SessionCount)
	assert.Equal(t, 50*time.Millisecond, cfg.FetchLatency)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 12\n"), 0600))

	t.Setenv(EnvPageSize, "3")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.PageSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: [nope"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid defaults", func(*Config) {}, nil},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, ErrInvalidPageSize},
		{"negative session count", func(c *Config) { c.SessionCount = -1 }, ErrInvalidSessionCount},
		{"negative latency", func(c *Config) { c.FetchLatency = -time.Second }, ErrInvalidFetchLatency},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewLogger_LevelFallback(t *testing.T) {
	logger := NewLogger(LoggingConfig{Level: "not-a-level", Format: "json"}, os.Stderr)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLogger_ParsesLevel(t *testing.T) {
	logger := NewLogger(LoggingConfig{Level: "debug", Format: "json"}, os.Stderr)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}
