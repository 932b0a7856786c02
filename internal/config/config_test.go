package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokehand.hcl")
	content := `
ui {
  log_file = "calc.log"
  decimals = 4
}

defaults {
  hp_threshold = "90"
  below_count  = "12"
  above_count  = "4"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "calc.log", cfg.UI.LogFile)
	assert.Equal(t, 4, cfg.UI.Decimals)
	assert.Equal(t, "90", cfg.Defaults.HpThreshold)
	assert.Equal(t, "12", cfg.Defaults.BelowCount)
	assert.Equal(t, "4", cfg.Defaults.AboveCount)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokehand.hcl")
	content := `
ui {
  decimals = 3
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.UI.Decimals)
	assert.Equal(t, "pokehand.log", cfg.UI.LogFile)
	assert.Equal(t, "70", cfg.Defaults.HpThreshold)
}

func TestLoadBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokehand.hcl")
	require.NoError(t, os.WriteFile(path, []byte("ui {"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.UI.Decimals = -1
	assert.Error(t, cfg.Validate())

	cfg.UI.Decimals = 11
	assert.Error(t, cfg.Validate())
}
