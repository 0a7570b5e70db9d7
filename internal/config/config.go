package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string
	Batch    BatchConfig
	Scraper  ScraperConfig
}

type BatchConfig struct {
	// Concurrency caps the number of orders paid in parallel by PayBatch.
	Concurrency int
}

type ScraperConfig struct {
	Concurrency int
	Timeout     time.Duration
	UserAgent   string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Batch: BatchConfig{
			Concurrency: getEnvInt("BATCH_CONCURRENCY", 8),
		},
		Scraper: ScraperConfig{
			Concurrency: getEnvInt("SCRAPER_CONCURRENCY", 4),
			Timeout:     getEnvDuration("SCRAPER_TIMEOUT", 10*time.Second),
			UserAgent:   getEnv("SCRAPER_USER_AGENT", "go-examples-scraper/1.0"),
		},
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog.Level, defaulting
// to info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
