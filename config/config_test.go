package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 4, cfg.Dataset.Blocks)
	assert.Equal(t, "gazepoint", cfg.Detection.Method)
	assert.Equal(t, 150.0, cfg.Sampling.Tracker)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rckit.json")
	content := `{
		"dataset": {"root": "/data/study", "blocks": 6},
		"screen": {"width": 2560, "height": 1440},
		"detection": {"method": "wavelet"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/study", cfg.Dataset.Root)
	assert.Equal(t, 6, cfg.Dataset.Blocks)
	assert.Equal(t, 2560.0, cfg.Screen.Width)
	assert.Equal(t, "wavelet", cfg.Detection.Method)
	// Untouched blocks keep their defaults.
	assert.Equal(t, "block_%d.tsv", cfg.Dataset.NameFormat)
	assert.Equal(t, 1000.0, cfg.Sampling.EOG)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rckit.yaml")
	content := "dataset:\n  blocks: 2\nsampling:\n  tracker: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Dataset.Blocks)
	assert.Equal(t, 60.0, cfg.Sampling.Tracker)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rckit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dataset": {"blocks": 6}}`), 0o644))

	t.Setenv("RCKIT_DATASET_BLOCKS", "8")
	t.Setenv("RCKIT_DETECTION_METHOD", "wavelet")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Dataset.Blocks)
	assert.Equal(t, "wavelet", cfg.Detection.Method)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("settings.toml")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rckit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"detection": {"method": "ivt"}}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("RCKIT_SCREEN_WIDTH", "-1")

	_, err := Load("")
	assert.Error(t, err)
}
