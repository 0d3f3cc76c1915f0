package readability

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/errs"
)

// implicitUserLayer loads the stored user dictionary of a locale. Failures
// degrade to an empty layer: a missing dictionary is expected, anything
// else is logged.
func (e *Engine) implicitUserLayer(localeID string) map[string]int {
	if e.store == nil {
		return nil
	}
	terms, err := e.store.Load(context.Background(), localeID)
	switch {
	case err == nil:
		return terms
	case errors.Is(err, errs.ErrNotFound):
		e.logger.Debug().Str("locale", localeID).Msg("no user dictionary")
	default:
		e.logger.Warn().Err(err).Str("locale", localeID).Msg("user dictionary unavailable, using packaged defaults")
	}
	return nil
}

// Store returns the attached dictionary store, if any.
func (e *Engine) Store() dictstore.Store { return e.store }

// UserDictionary returns a copy of the active user layer.
func (e *Engine) UserDictionary() map[string]int {
	return e.dict.User()
}

// DefaultDictionary returns a copy of the packaged dictionary of the active locale.
func (e *Engine) DefaultDictionary() map[string]int {
	return e.dict.Defaults()
}

// SetUserDictionary replaces the in-memory user layer without touching the
// store.
func (e *Engine) SetUserDictionary(terms map[string]int) error {
	return e.install(e.base, terms)
}

// LoadDictionary reloads the user layer of the active locale from the store.
// Unlike implicit loading, a missing dictionary is reported; the user layer
// is emptied in that case.
func (e *Engine) LoadDictionary(ctx context.Context) error {
	if e.store == nil {
		return errs.ErrNoDictionaryStore
	}
	terms, err := e.store.Load(ctx, e.cfg.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			_ = e.install(e.base, nil)
		}
		return fmt.Errorf("failed to load dictionary for %s: %w", e.cfg.ID, err)
	}
	return e.install(e.base, terms)
}

// AddTerm sets the syllable count of one word in the user layer. With a store
// attached the change is written through and the layer reloaded.
func (e *Engine) AddTerm(ctx context.Context, word string, syllables int) error {
	return e.AddTerms(ctx, map[string]int{word: syllables})
}

// AddTerms sets several user-layer entries at once.
func (e *Engine) AddTerms(ctx context.Context, terms map[string]int) error {
	clean, err := dictstore.Validate(terms)
	if err != nil {
		return err
	}
	if e.store == nil {
		user := e.dict.User()
		for w, n := range clean {
			user[w] = n
		}
		return e.install(e.base, user)
	}
	if err := e.store.AddTerms(ctx, e.cfg.ID, clean); err != nil {
		return fmt.Errorf("failed to store terms for %s: %w", e.cfg.ID, err)
	}
	return e.LoadDictionary(ctx)
}

// RevertDictionary drops the user layer so only packaged counts apply.
func (e *Engine) RevertDictionary(ctx context.Context) error {
	if e.store != nil {
		if err := e.store.RevertToDefault(ctx, e.cfg.ID); err != nil {
			return fmt.Errorf("failed to revert dictionary for %s: %w", e.cfg.ID, err)
		}
	}
	return e.install(e.base, nil)
}
