package dictstore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/readgrade/internal/errs"
)

const fileName = "custom_dict.json"

// FileStore keeps one JSON document per locale under a root directory:
// <dir>/<locale>/custom_dict.json.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the document path for a locale.
func (s *FileStore) Path(locale string) string {
	return filepath.Join(s.dir, localeKey(locale), fileName)
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context, locale string) (map[string]int, error) {
	path := s.Path(locale)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &errs.NotFoundError{Resource: "user dictionary", ID: path, Err: errs.ErrNotFound}
		}
		return nil, fmt.Errorf("failed to open user dictionary: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return DecodePayload(path, file)
}

// Overwrite implements Store.
func (s *FileStore) Overwrite(_ context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	return s.write(locale, clean)
}

// AddTerm implements Store.
func (s *FileStore) AddTerm(ctx context.Context, locale, word string, count int) error {
	return s.AddTerms(ctx, locale, map[string]int{word: count})
}

// AddTerms implements Store.
func (s *FileStore) AddTerms(ctx context.Context, locale string, terms map[string]int) error {
	clean, err := Validate(terms)
	if err != nil {
		return err
	}
	current, err := s.Load(ctx, locale)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		current = map[string]int{}
	}
	for word, count := range clean {
		current[word] = count
	}
	return s.write(locale, current)
}

// RevertToDefault implements Store.
func (s *FileStore) RevertToDefault(_ context.Context, locale string) error {
	if err := os.Remove(s.Path(locale)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove user dictionary: %w", err)
	}
	return nil
}

func (s *FileStore) write(locale string, terms map[string]int) error {
	path := s.Path(locale)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dictionary dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "dict-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp dictionary: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := EncodePayload(writer, terms); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush dictionary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close dictionary: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	return nil
}
