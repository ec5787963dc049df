package hostcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 1920\nlocale: de-DE\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Set fields override, unset fields keep their defaults.
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, uint32(1), cfg.SampleCount)
	assert.Empty(t, cfg.Title)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "title: my game\nwidth: 800\nheight: 600\nsample_count: 4\nlocale: en-US\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Title: "my game", Width: 800, Height: 600, SampleCount: 4, Locale: "en-US"}, cfg)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadIgnoresNonPositiveDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -100\nheight: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
}
