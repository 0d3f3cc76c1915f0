// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. The same layout is read
// from READGRADE_* environment variables. Nil fields are unset.
type FileConfig struct {
	Engine     EngineConfig     `toml:"engine"`
	Verbose    VerboseConfig    `toml:"verbose"`
	Dictionary DictionaryConfig `toml:"dictionary"`
}

// EngineConfig maps engine settings.
type EngineConfig struct {
	Lang         *string `toml:"lang" env:"LANG"`
	Rounding     *bool   `toml:"rounding" env:"ROUNDING"`
	Precision    *int    `toml:"precision" env:"PRECISION"`
	RmApostrophe *bool   `toml:"rm-apostrophe" env:"RM_APOSTROPHE"`
	CacheSize    *int    `toml:"cache-size" env:"CACHE_SIZE"`
}

// VerboseConfig maps verbose report settings.
type VerboseConfig struct {
	TopN         *int  `toml:"top-n" env:"TOP_N"`
	WordAnalysis *bool `toml:"word-analysis" env:"WORD_ANALYSIS"`
	Suggestions  *bool `toml:"suggestions" env:"SUGGESTIONS"`
}

// DictionaryConfig selects the user dictionary backend.
type DictionaryConfig struct {
	Backend *string `toml:"backend" env:"DICT_BACKEND"`
	Path    *string `toml:"path" env:"DICT_PATH"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Merge returns c with every field set in over taking precedence.
func (c FileConfig) Merge(over FileConfig) FileConfig {
	pick(&c.Engine.Lang, over.Engine.Lang)
	pick(&c.Engine.Rounding, over.Engine.Rounding)
	pick(&c.Engine.Precision, over.Engine.Precision)
	pick(&c.Engine.RmApostrophe, over.Engine.RmApostrophe)
	pick(&c.Engine.CacheSize, over.Engine.CacheSize)
	pick(&c.Verbose.TopN, over.Verbose.TopN)
	pick(&c.Verbose.WordAnalysis, over.Verbose.WordAnalysis)
	pick(&c.Verbose.Suggestions, over.Verbose.Suggestions)
	pick(&c.Dictionary.Backend, over.Dictionary.Backend)
	pick(&c.Dictionary.Path, over.Dictionary.Path)
	return c
}

func pick[T any](target **T, value *T) {
	if value != nil {
		*target = value
	}
}
