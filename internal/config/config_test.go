package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	berrors "github.com/streambingo/streambingo/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60*time.Second, cfg.GeneratorTimeout())
	assert.True(t, cfg.UseUnicode())
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
log_level: debug
generator:
  model: gemini-2.5-pro
  timeout_seconds: 30
ui:
  unicode: false
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.Generator.Model)
	assert.Equal(t, 30*time.Second, cfg.GeneratorTimeout())
	assert.False(t, cfg.UseUnicode())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "log_level: [unterminated")

	_, err := Load(dir)

	var configErr *berrors.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "log_level: loud")

	_, err := Load(dir)

	var configErr *berrors.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestLoadRejectsOutOfRangeTimeout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "generator:\n  timeout_seconds: 4000")

	_, err := Load(dir)
	require.Error(t, err)
}
