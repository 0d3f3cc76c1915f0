// Package textseg counts characters and splits text into words and sentences.
package textseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/readgrade/internal/locale"
)

// CharCount counts runes, skipping whitespace when ignoreSpaces is set.
func CharCount(text string, ignoreSpaces bool) int {
	if !ignoreSpaces {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// LetterCount counts letter runes. Whitespace is included when ignoreSpaces is false.
func LetterCount(text string, ignoreSpaces bool) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || (!ignoreSpaces && unicode.IsSpace(r)) {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '_'
}

// RemovePunctuation drops every rune that is not part of a word or whitespace.
// With keepApostrophes, an apostrophe between two letters survives; when the
// locale lists contraction suffixes it must also start one of them.
func RemovePunctuation(text string, keepApostrophes bool, cfg *locale.Config) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range runes {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		if keepApostrophes && cfg.IsApostrophe(r) && keepApostrophe(runes, i, cfg) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepApostrophe(runes []rune, i int, cfg *locale.Config) bool {
	if i == 0 || i+1 >= len(runes) {
		return false
	}
	if !unicode.IsLetter(runes[i-1]) || !unicode.IsLetter(runes[i+1]) {
		return false
	}
	if len(cfg.Contractions) == 0 {
		return true
	}
	j := i + 1
	for j < len(runes) && unicode.IsLetter(runes[j]) {
		j++
	}
	suffix := strings.ToLower(string(runes[i+1 : j]))
	for _, c := range cfg.Contractions {
		if suffix == c {
			return true
		}
	}
	return false
}

// Words splits text on whitespace after punctuation removal.
func Words(text string, keepApostrophes bool, cfg *locale.Config) []string {
	return strings.Fields(RemovePunctuation(text, keepApostrophes, cfg))
}

// LexiconCount counts words. Without removePunct, standalone punctuation
// tokens such as "&" count as words.
func LexiconCount(text string, removePunct, keepApostrophes bool, cfg *locale.Config) int {
	if !removePunct {
		return len(strings.Fields(text))
	}
	return len(Words(text, keepApostrophes, cfg))
}

// MiniwordCount counts words of at most maxSize runes.
func MiniwordCount(words []string, maxSize int) int {
	count := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) <= maxSize {
			count++
		}
	}
	return count
}

// LongWordCount counts words longer than minLetters runes.
func LongWordCount(words []string, minLetters int) int {
	count := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > minLetters {
			count++
		}
	}
	return count
}

// StripWord trims leading and trailing runes that are not part of a word.
func StripWord(token string) string {
	return strings.TrimFunc(token, func(r rune) bool { return !isWordRune(r) })
}

// HasLetter reports whether s contains a letter.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
