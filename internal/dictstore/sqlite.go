package dictstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/verte-zerg/readgrade/internal/errs"

	_ "modernc.org/sqlite" // SQLite driver.
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLStore keeps user dictionaries in a SQLite database.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens or creates the SQLite database and applies migrations.
func OpenSQL(path string) (*SQLStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLStore{db: db}
	if err := store.migrate(context.Background()); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate dictionary database: %w", err)
	}
	return nil
}

// Version reports the applied schema version.
func (s *SQLStore) Version(ctx context.Context) (int64, error) {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return 0, err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

// Load implements Store.
func (s *SQLStore) Load(ctx context.Context, locale string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, syllables FROM syllable_overrides WHERE locale = ?`, localeKey(locale))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	terms := map[string]int{}
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, err
		}
		terms[word] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, &errs.NotFoundError{Resource: "user dictionary", ID: locale}
	}
	return terms, nil
}

// Overwrite implements Store.
func (s *SQLStore) Overwrite(ctx context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	return s.upsert(ctx, locale, clean, true)
}

// AddTerm implements Store.
func (s *SQLStore) AddTerm(ctx context.Context, locale, word string, count int) error {
	return s.AddTerms(ctx, locale, map[string]int{word: count})
}

// AddTerms implements Store.
func (s *SQLStore) AddTerms(ctx context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	return s.upsert(ctx, locale, clean, false)
}

// RevertToDefault implements Store.
func (s *SQLStore) RevertToDefault(ctx context.Context, locale string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM syllable_overrides WHERE locale = ?`, localeKey(locale))
	return err
}

func (s *SQLStore) upsert(ctx context.Context, locale string, terms map[string]int, replace bool) (err error) {
	key := localeKey(locale)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if replace {
		if _, err = tx.ExecContext(ctx, `DELETE FROM syllable_overrides WHERE locale = ?`, key); err != nil {
			return err
		}
	}
	if len(terms) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO syllable_overrides (locale, word, syllables, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(locale, word) DO UPDATE SET syllables = excluded.syllables, updated_at = excluded.updated_at`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		now := time.Now().UTC().Format(time.RFC3339Nano)
		for word, count := range terms {
			if _, err = stmt.ExecContext(ctx, key, word, count, now); err != nil {
				return err
			}
		}
	}
	err = tx.Commit()
	return err
}
