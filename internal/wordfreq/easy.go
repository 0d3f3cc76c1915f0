package wordfreq

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/readgrade/internal/wordlist"
)

// Lang maps a locale id such as en_US or pt-BR to its wordfreq language code.
func Lang(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "_-"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// EasyWords keeps the size most frequent alphabetic words of ranked that pass
// the language filter. Single letters and very long tokens are dropped.
func EasyWords(ranked []string, lang string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be greater than 0")
	}
	keep := wordlist.FilterForLang(lang)
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	for _, w := range ranked {
		if _, dup := seen[w]; dup || !alphabetic(w) || !keep(w) {
			continue
		}
		if n := utf8.RuneCountInString(w); n < 2 || n > 20 {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == size {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no easy words found for %s", lang)
	}
	return out, nil
}

func alphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return word != ""
}

// WriteAttribution writes the attribution and license files next to
// generated lists.
func WriteAttribution(a *Archive, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	attribution := strings.Join([]string{
		"Easy-word lists generated from the wordfreq dataset.",
		"Source: https://github.com/rspeer/wordfreq",
		"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
		"Changes were made: filtered to alphabetic words and truncated to the most frequent entries.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(attribution), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	license, err := a.License()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "LICENSE.txt"), license, 0o644); err != nil {
		return fmt.Errorf("failed to write license: %w", err)
	}
	return nil
}

// ReservedFiles are written next to lists and are not lists themselves.
var ReservedFiles = map[string]bool{"ATTRIBUTION.txt": true, "LICENSE.txt": true}
