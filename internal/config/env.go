package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "READGRADE_"

// LoadEnv reads overrides from the process environment.
func LoadEnv() (FileConfig, error) {
	return LoadEnvFrom(environ(os.Environ()))
}

// LoadEnvFrom reads overrides from the given variables.
func LoadEnvFrom(vars map[string]string) (FileConfig, error) {
	var cfg FileConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Load reads the config file at path and applies environment overrides on top.
func Load(path string) (FileConfig, error) {
	file, err := LoadConfig(path)
	if err != nil {
		return FileConfig{}, err
	}
	over, err := LoadEnv()
	if err != nil {
		return FileConfig{}, err
	}
	return file.Merge(over), nil
}

func environ(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
