package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Engine.Lang)

	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[engine]
lang = "de"
precision = 1
rounding = true

[verbose]
top-n = 3
suggestions = false

[dictionary]
backend = "sqlite"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Engine.Lang)
	assert.Equal(t, "de", *cfg.Engine.Lang)
	assert.Equal(t, 1, *cfg.Engine.Precision)
	assert.True(t, *cfg.Engine.Rounding)
	assert.Nil(t, cfg.Engine.RmApostrophe)
	assert.Equal(t, 3, *cfg.Verbose.TopN)
	assert.False(t, *cfg.Verbose.Suggestions)
	assert.Equal(t, "sqlite", *cfg.Dictionary.Backend)
	assert.Nil(t, cfg.Dictionary.Path)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nlanguage = \"de\"\n"), 0o644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "engine.language")
}

func TestEnvOverridesFile(t *testing.T) {
	lang, precision := "fr", 4
	file := FileConfig{Engine: EngineConfig{Lang: &lang, Precision: &precision}}

	over, err := LoadEnvFrom(map[string]string{
		"READGRADE_LANG":          "es",
		"READGRADE_RM_APOSTROPHE": "true",
		"READGRADE_TOP_N":         "7",
		"LANG":                    "C.UTF-8",
	})
	require.NoError(t, err)
	merged := file.Merge(over)

	assert.Equal(t, "es", *merged.Engine.Lang)
	assert.Equal(t, 4, *merged.Engine.Precision)
	assert.True(t, *merged.Engine.RmApostrophe)
	assert.Equal(t, 7, *merged.Verbose.TopN)
	assert.Nil(t, merged.Dictionary.Backend)
}

func TestEnvRejectsMalformedValues(t *testing.T) {
	_, err := LoadEnvFrom(map[string]string{"READGRADE_PRECISION": "two"})
	assert.Error(t, err)
}

func TestPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/cfg", "readgrade", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/cfg", "readgrade", "wordlists", "de.txt"), DefaultWordListPath("de"))
	assert.Equal(t, filepath.Join("/data", "readgrade", "readgrade.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/data", "readgrade", "dictionaries"), DefaultDictionaryDir())
}
