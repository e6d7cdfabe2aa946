// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscan/recognizer-mcp/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RECOGNIZER_LOG_LEVEL", "")
	t.Setenv("RECOGNIZER_LOG_FILE", "")
	t.Setenv("RECOGNIZER_DEFAULT_FORMAT", "")
	t.Setenv("RECOGNIZER_VALIDATE", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "json", cfg.DefaultFormat)
	assert.True(t, cfg.ValidateSchema)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RECOGNIZER_LOG_LEVEL", "debug")
	t.Setenv("RECOGNIZER_DEFAULT_FORMAT", "yaml")
	t.Setenv("RECOGNIZER_VALIDATE", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.DefaultFormat)
	assert.False(t, cfg.ValidateSchema)
}

func TestLoad_InvalidBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "word", value: "nope"},
		{name: "typo", value: "ture"},
		{name: "number", value: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RECOGNIZER_VALIDATE", tt.value)

			cfg, err := config.Load("")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "RECOGNIZER_VALIDATE")
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("RECOGNIZER_LOG_LEVEL", "")
	t.Setenv("RECOGNIZER_LOG_FILE", "")
	t.Setenv("RECOGNIZER_DEFAULT_FORMAT", "")
	// godotenv does not override variables that are already set, so these
	// are unset rather than empty.
	for _, key := range []string{"RECOGNIZER_LOG_LEVEL", "RECOGNIZER_LOG_FILE"} {
		require.NoError(t, os.Unsetenv(key))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RECOGNIZER_LOG_LEVEL=warn\nRECOGNIZER_LOG_FILE=/tmp/recognizer.log\n"), 0o600))

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/recognizer.log", cfg.LogFile)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "valid", cfg: config.Config{LogLevel: "warn", DefaultFormat: "yaml"}},
		{name: "unknown log level", cfg: config.Config{LogLevel: "verbose", DefaultFormat: "json"}, wantErr: true},
		{name: "unknown format", cfg: config.Config{LogLevel: "info", DefaultFormat: "xml"}, wantErr: true},
		{name: "empty", cfg: config.Config{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid configuration")
				return
			}
			require.NoError(t, err)
		})
	}
}
