package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/denismitr/pcset/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pcset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, "format: json\nconcurrency: 8\n")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.False(t, cfg.Debug)
	})

	t.Run("defaults fill missing keys", func(t *testing.T) {
		path := writeConfig(t, "debug: true\n")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config.FormatTable, cfg.Format)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.True(t, cfg.Debug)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "format: json\n")
		t.Setenv("PCSET_FORMAT", "yaml")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config.FormatYAML, cfg.Format)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		_, err := config.LoadConfig(writeConfig(t, "format: xml\n"))
		assert.ErrorContains(t, err, "unsupported format")

		_, err = config.LoadConfig(writeConfig(t, "concurrency: 0\n"))
		assert.ErrorContains(t, err, "concurrency")
	})
}

func TestDefault(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}
