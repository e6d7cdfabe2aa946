// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the command line tool's settings.
type Config struct {
	LogLevel      string `validate:"required,oneof=debug info warn error"`
	LogFile       string
	DefaultFormat string `validate:"required,oneof=json yaml"`

	// ValidateSchema enables CUE schema checks on native results before mapping.
	ValidateSchema bool
}

// Load reads configuration from the environment. A .env file at envFile is
// loaded first when it exists; real environment variables win over it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	validate, err := getEnvAsBool("RECOGNIZER_VALIDATE", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:       getEnv("RECOGNIZER_LOG_LEVEL", "info"),
		LogFile:        getEnv("RECOGNIZER_LOG_FILE", ""),
		DefaultFormat:  getEnv("RECOGNIZER_DEFAULT_FORMAT", "json"),
		ValidateSchema: validate,
	}, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: want true or false", key, value)
	}
	return b, nil
}
