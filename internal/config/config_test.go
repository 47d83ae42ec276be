package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
log:
  level: "debug"
input:
  format: "yaml"
output:
  format: "json"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Input.Format)
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoadNoFile verifies an empty path yields the defaults.
func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoadPartialKeepsDefaults verifies keys absent from the file keep their defaults.
func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "log:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Empty(t, cfg.Input.Format)
}

// TestEnvOverride verifies that FTRACKER_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FTRACKER_LOG_LEVEL", "error")
	t.Setenv("FTRACKER_OUTPUT_FORMAT", "text")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)
	// Unchanged fields keep YAML values
	assert.Equal(t, "yaml", cfg.Input.Format)
}

// TestValidationOutputFormat verifies an unknown output format is rejected.
func TestValidationOutputFormat(t *testing.T) {
	_, err := Load(writeTemp(t, "output:\n  format: xml\n"))
	assert.Error(t, err)
}

// TestValidationInputFormat verifies an unknown input format is rejected.
func TestValidationInputFormat(t *testing.T) {
	t.Setenv("FTRACKER_INPUT_FORMAT", "csv")
	_, err := Load("")
	assert.Error(t, err)
}

// TestValidationLogLevel verifies an unknown log level is rejected.
func TestValidationLogLevel(t *testing.T) {
	_, err := Load(writeTemp(t, "log:\n  level: loud\n"))
	assert.Error(t, err)
}

// TestSlogLevel verifies level names map to slog levels.
func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "info"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

// TestLoadInvalidYAML verifies a malformed file is reported.
func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "log: [unterminated"))
	assert.Error(t, err)
}
