package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port         string
	LogLevel     string
	PollInterval time.Duration
}

func Load() (Config, error) {
	config := Config{
		Port:     envOrDefault("PORT", "8080"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),
	}

	pollInterval, err := time.ParseDuration(envOrDefault("POLL_INTERVAL", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing POLL_INTERVAL: %w", err)
	}
	if pollInterval < time.Second {
		return Config{}, fmt.Errorf("POLL_INTERVAL must be at least 1s, got %s", pollInterval)
	}
	config.PollInterval = pollInterval

	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
