package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkBJohnsAdmin/distribution/internal/config"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 25, cfg.Walk.Length)
	assert.Equal(t, []int{100, 1000, 10000}, cfg.Trials.Counts)
	assert.Equal(t, 10, cfg.Trials.Threshold)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	content := []byte(`
seed: 42
walk:
  length: 50
trials:
  counts: [10, 100]
  threshold: 15
render:
  type: hplot
  options:
    path: out.png
    width_cm: 12.5
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 50, cfg.Walk.Length)
	assert.Equal(t, []int{10, 100}, cfg.Trials.Counts)
	assert.Equal(t, 15, cfg.Trials.Threshold)
	assert.Equal(t, "hplot", cfg.Render.Type)
}

func TestDecodeOptions(t *testing.T) {
	cfg := config.RenderConfig{
		Type:    "hplot",
		Options: map[string]any{"path": "hist.png", "width_cm": 12.5},
	}

	var opts struct {
		Path    string  `mapstructure:"path"`
		WidthCM float64 `mapstructure:"width_cm"`
	}
	require.NoError(t, cfg.DecodeOptions(&opts))
	assert.Equal(t, "hist.png", opts.Path)
	assert.Equal(t, 12.5, opts.WidthCM)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials:\n  counts: [0]\n"), 0644))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
