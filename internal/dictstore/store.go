package dictstore

import (
	"context"
	"strings"

	"github.com/verte-zerg/readgrade/internal/errs"
)

// Store is the user-editable layer of the syllable dictionary.
type Store interface {
	// Load returns the user layer for a locale, or a NotFoundError when none exists.
	Load(ctx context.Context, locale string) (map[string]int, error)
	// Overwrite replaces the user layer.
	Overwrite(ctx context.Context, locale string, terms map[string]int) error
	// AddTerm inserts or updates one word.
	AddTerm(ctx context.Context, locale, word string, count int) error
	// AddTerms inserts or updates several words at once.
	AddTerms(ctx context.Context, locale string, terms map[string]int) error
	// RevertToDefault drops the user layer so only the packaged defaults apply.
	RevertToDefault(ctx context.Context, locale string) error
}

// MemoryStore keeps dictionaries in process. The zero value is not usable; call NewMemoryStore.
type MemoryStore struct {
	layers map[string]map[string]int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layers: map[string]map[string]int{}}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, locale string) (map[string]int, error) {
	layer, ok := m.layers[localeKey(locale)]
	if !ok {
		return nil, &errs.NotFoundError{Resource: "user dictionary", ID: locale}
	}
	out := make(map[string]int, len(layer))
	for k, v := range layer {
		out[k] = v
	}
	return out, nil
}

// Overwrite implements Store.
func (m *MemoryStore) Overwrite(_ context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	m.layers[localeKey(locale)] = clean
	return nil
}

// AddTerm implements Store.
func (m *MemoryStore) AddTerm(ctx context.Context, locale, word string, count int) error {
	return m.AddTerms(ctx, locale, map[string]int{word: count})
}

// AddTerms implements Store.
func (m *MemoryStore) AddTerms(_ context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	key := localeKey(locale)
	layer, ok := m.layers[key]
	if !ok {
		layer = map[string]int{}
		m.layers[key] = layer
	}
	for word, count := range clean {
		layer[word] = count
	}
	return nil
}

// RevertToDefault implements Store.
func (m *MemoryStore) RevertToDefault(_ context.Context, locale string) error {
	delete(m.layers, localeKey(locale))
	return nil
}

func localeKey(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLStore)(nil)
)
