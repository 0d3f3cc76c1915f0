package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/verte-zerg/readgrade/internal/errs"
)

// DefaultID is the locale used when none is configured.
const DefaultID = "en"

// Registry resolves user-supplied locale identifiers against a Source.
type Registry struct {
	src Source
}

// NewRegistry wraps src.
func NewRegistry(src Source) *Registry {
	return &Registry{src: src}
}

// DefaultRegistry returns a registry over the embedded locale data.
func DefaultRegistry() (*Registry, error) {
	src, err := Embedded()
	if err != nil {
		return nil, err
	}
	return NewRegistry(src), nil
}

// Lookup resolves id. Keys are case-insensitive and accept '_' or '-'. A
// lang_region override is tried first, then the base language.
func (r *Registry) Lookup(id string) (*Config, error) {
	keys, err := Candidates(id)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		cfg, err := r.src.Config(key)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("failed to load locale %s: %w", key, err)
		}
	}
	return nil, &errs.NotFoundError{Resource: "locale", ID: id, Err: errs.ErrUnknownLocale}
}

// IDs lists the supported locale keys.
func (r *Registry) IDs() []string {
	return r.src.IDs()
}

// Candidates returns the lookup keys for id, most specific first.
func Candidates(id string) ([]string, error) {
	raw := strings.TrimSpace(id)
	if raw == "" {
		return nil, &errs.NotFoundError{Resource: "locale", ID: id, Err: errs.ErrUnknownLocale}
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return nil, &errs.NotFoundError{Resource: "locale", ID: id, Err: errs.ErrUnknownLocale}
	}
	base, _ := tag.Base()
	baseKey := strings.ToLower(base.String())
	region, conf := tag.Region()
	if conf != language.Exact {
		return []string{baseKey}, nil
	}
	return []string{baseKey + "_" + strings.ToLower(region.String()), baseKey}, nil
}
