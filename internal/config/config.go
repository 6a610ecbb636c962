// Package config centralises configuration parsing for the roster service.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the roster service.
type Config struct {
	HTTPAddress     string
	LogLevel        string
	LogFormat       string
	CORSOrigin      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is honored if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
