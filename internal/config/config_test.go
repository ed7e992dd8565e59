package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "\t", cfg.Input.Delimiter)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cohend.yaml")
	content := "input:\n  delimiter: \",\"\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("COHEND_DELIMITER overrides file value", func(t *testing.T) {
		t.Setenv("COHEND_DELIMITER", ";")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ";", cfg.Input.Delimiter)
	})

	t.Run("COHEND_LOG_LEVEL overrides file value", func(t *testing.T) {
		t.Setenv("COHEND_LOG_LEVEL", "warn")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("empty env leaves config untouched", func(t *testing.T) {
		t.Setenv("COHEND_DELIMITER", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "\t", cfg.Input.Delimiter)
	})
}

func TestDelimiterRune(t *testing.T) {
	t.Run("single character", func(t *testing.T) {
		cfg := &Config{Input: InputConfig{Delimiter: ","}}
		r, err := cfg.DelimiterRune()
		require.NoError(t, err)
		assert.Equal(t, ',', r)
	})

	t.Run("literal tab", func(t *testing.T) {
		cfg := &Config{Input: InputConfig{Delimiter: "\t"}}
		r, err := cfg.DelimiterRune()
		require.NoError(t, err)
		assert.Equal(t, '\t', r)
	})

	t.Run("escaped tab", func(t *testing.T) {
		cfg := &Config{Input: InputConfig{Delimiter: `\t`}}
		r, err := cfg.DelimiterRune()
		require.NoError(t, err)
		assert.Equal(t, '\t', r)
	})

	t.Run("multi-character rejected", func(t *testing.T) {
		cfg := &Config{Input: InputConfig{Delimiter: "ab"}}
		_, err := cfg.DelimiterRune()
		require.Error(t, err)
	})

	t.Run("empty rejected", func(t *testing.T) {
		cfg := &Config{Input: InputConfig{Delimiter: ""}}
		_, err := cfg.DelimiterRune()
		require.Error(t, err)
	})
}
