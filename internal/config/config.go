// Package config loads application configuration from environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
// Values are populated by Load from environment variables.
type Config struct {
	// DatabasePath is the SQLite file backing the durable store.
	// Defaults to "./viajes.db".
	DatabasePath string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment, first merging in a .env
// file if one exists in the working directory. A missing .env is not an
// error — environment variables alone are enough.
func Load() (Config, error) {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	return Config{
		DatabasePath: getEnv("DATABASE_PATH", "./viajes.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
