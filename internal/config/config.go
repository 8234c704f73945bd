package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fadedpez/highcard/internal/logging"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/joho/godotenv"
)

const defaultHandSize = 3

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string // "development" or "production"
	LogLevel    logging.Level

	// Game settings
	Seed     *int64 // nil means shuffle from the clock
	HandSize int
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, types.WrapError(types.ErrInvalidConfig, "error loading .env file", err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Environment: getEnvWithDefault(getenv, "ENVIRONMENT", "development"),
		HandSize:    defaultHandSize,
	}

	defaultLevel := "info"
	if cfg.IsDevelopment() {
		defaultLevel = "debug"
	}
	level, err := logging.ParseLevel(getEnvWithDefault(getenv, "LOG_LEVEL", defaultLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if raw := getenv("HIGHCARD_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("HIGHCARD_SEED %q is not an integer", raw), err)
		}
		cfg.Seed = &seed
	}

	if raw := getenv("HIGHCARD_HAND_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("HIGHCARD_HAND_SIZE %q is not an integer", raw), err)
		}
		cfg.HandSize = size
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the configuration values
func (c *Config) validate() error {
	if c.Environment != "development" && c.Environment != "production" {
		return types.NewGameError(types.ErrInvalidConfig, fmt.Sprintf("ENVIRONMENT must be development or production, got %q", c.Environment))
	}
	if c.HandSize < 1 {
		return types.NewGameError(types.ErrInvalidConfig, "HIGHCARD_HAND_SIZE must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}
