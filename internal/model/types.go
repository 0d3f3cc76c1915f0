// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Dictionary backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds resolved CLI settings after flags, environment and file are applied.
type Config struct {
	Lang         string
	Rounding     bool
	Precision    int
	RmApostrophe bool
	CacheSize    int

	TopN         int
	WordAnalysis bool
	Suggestions  bool

	DictBackend string
	DictPath    string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Lang:         "en",
		Precision:    2,
		CacheSize:    256,
		TopN:         5,
		WordAnalysis: true,
		Suggestions:  true,
		DictBackend:  BackendFile,
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Lang) == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if c.Precision < 0 {
		return fmt.Errorf("--precision must be >= 0")
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache-size must be > 0")
	}
	if c.TopN < 1 {
		return fmt.Errorf("--top-n must be > 0")
	}
	switch c.DictBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown dictionary backend %q (want %s, %s or %s)",
			c.DictBackend, BackendFile, BackendSQLite, BackendMemory)
	}
	return nil
}
