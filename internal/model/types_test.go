package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"empty lang":      func(c *Config) { c.Lang = " " },
		"precision":       func(c *Config) { c.Precision = -1 },
		"cache size":      func(c *Config) { c.CacheSize = 0 },
		"top n":           func(c *Config) { c.TopN = 0 },
		"unknown backend": func(c *Config) { c.DictBackend = "redis" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
