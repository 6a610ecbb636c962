package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.HTTPAddress)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.HTTPAddress != ":9999" {
		t.Fatalf("override not applied: %q", cfg.HTTPAddress)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Fatalf("duration override not applied: %s", cfg.ReadTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level override not applied: %q", cfg.LogLevel)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("expected fallback, got %s", cfg.WriteTimeout)
	}
}
