package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sociograph.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 640
height = 480
palette = "light"
force_strength = 0.7
mode = "circle"
show_labels = false
port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "light", cfg.Palette)
	assert.Equal(t, 0.7, cfg.ForceStrength)
	assert.Equal(t, "circle", cfg.Mode)
	assert.False(t, cfg.ShowLabels)
	assert.Equal(t, 9090, cfg.Port)

	// Unset keys keep their defaults.
	assert.Equal(t, "all", cfg.Filter)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 1.0, cfg.PixelRatio)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, `width = "not a number`)

	_, err := Load(path)
	assert.Error(t, err)
}
