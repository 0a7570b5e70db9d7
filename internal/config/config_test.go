package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, 4, cfg.Scraper.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, "go-examples-scraper/1.0", cfg.Scraper.UserAgent)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BATCH_CONCURRENCY", "16")
	t.Setenv("SCRAPER_CONCURRENCY", "2")
	t.Setenv("SCRAPER_TIMEOUT", "30s")
	t.Setenv("SCRAPER_USER_AGENT", "custom-agent/2.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.Batch.Concurrency)
	assert.Equal(t, 2, cfg.Scraper.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, "custom-agent/2.0", cfg.Scraper.UserAgent)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BATCH_CONCURRENCY", "many")
	t.Setenv("SCRAPER_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}
