// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "readgrade"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigDir returns the readgrade config directory.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), appName)
}

// DefaultDataDir returns the readgrade data directory.
func DefaultDataDir() string {
	return filepath.Join(XDGDataHome(), appName)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// DefaultWordListDir returns the directory for generated easy-word lists.
func DefaultWordListDir() string {
	return filepath.Join(DefaultConfigDir(), "wordlists")
}

// DefaultWordListPath builds the easy-word list path for a locale.
func DefaultWordListPath(locale string) string {
	return filepath.Join(DefaultWordListDir(), locale+".txt")
}

// DefaultDictionaryDir returns the root of file-backed user dictionaries.
func DefaultDictionaryDir() string {
	return filepath.Join(DefaultDataDir(), "dictionaries")
}

// DefaultDBPath returns the default path for the SQLite dictionary database.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), appName+".db")
}

// DefaultWordfreqCacheDir returns the cache directory for wordfreq wheels.
func DefaultWordfreqCacheDir() string {
	return filepath.Join(DefaultDataDir(), "wordfreq")
}
