package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", config.Port)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", config.LogLevel)
	}
	if config.PollInterval != 10*time.Second {
		t.Errorf("expected default poll interval 10s, got %s", config.PollInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POLL_INTERVAL", "30s")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != "9090" {
		t.Errorf("expected port 9090, got %s", config.Port)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", config.LogLevel)
	}
	if config.PollInterval != 30*time.Second {
		t.Errorf("expected poll interval 30s, got %s", config.PollInterval)
	}
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "often")
	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable poll interval")
	}
}

func TestLoad_PollIntervalTooShort(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "100ms")
	if _, err := Load(); err == nil {
		t.Error("expected error for sub-second poll interval")
	}
}
