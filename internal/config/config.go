package config

import (
	"fmt"
	"os"
)

// devSecret is only acceptable outside production; Load refuses to fall back
// to it when FRESHKEEP_ENV=production.
const devSecret = "freshkeep-secret-key-change-in-production"

// Config holds all configuration for the application.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	LogLevel  string
	Env       string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnvOrDefault("FRESHKEEP_PORT", "8080"),
		DBPath:    getEnvOrDefault("FRESHKEEP_DB_PATH", "freshkeep.db"),
		LogLevel:  getEnvOrDefault("FRESHKEEP_LOG_LEVEL", "info"),
		Env:       getEnvOrDefault("FRESHKEEP_ENV", "development"),
		JWTSecret: os.Getenv("FRESHKEEP_JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("FRESHKEEP_JWT_SECRET environment variable is required in production")
		}
		cfg.JWTSecret = devSecret
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
