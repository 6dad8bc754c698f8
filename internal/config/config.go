// Package config loads runtime configuration from environment variables,
// optionally seeded from a .env file in development. The same binary runs in
// every environment; only the variables change.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the API.
type Config struct {
	Port        string // TCP port the HTTP server listens on
	DatabaseURL string // PostgreSQL connection string
	Env         string // "development", "staging" or "production"
}

// Load reads the configuration. A missing .env file is fine — in production
// the variables come from the deployment platform.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"), // required; startup fails without it
		Env:         env,
	}
}
