// Package locale holds per-language constants and rule tables.
package locale

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Band maps a score range to one or more grade levels.
// Reading-ease bands use Bound as an inclusive lower limit and are ordered from
// easiest to hardest. Dale-Chall bands use Bound as an exclusive upper limit and
// are ordered from lowest to highest. In both lists the last band is the fallback.
type Band struct {
	Bound  float64
	Grades []int
}

// SuffixRule rewrites a word ending during lemmatization.
type SuffixRule struct {
	Suffix      string
	Replacement string
}

// Config is the immutable rule set for one locale.
type Config struct {
	ID   string
	Name string
	Tag  language.Tag

	FleschBase     float64
	FleschSentence float64
	FleschSyllable float64

	PolysyllableSyllables int
	DifficultSyllables    int
	LongWordLetters       int
	MiniWordLetters       int
	LongSentenceWords     int
	ReadingWPM            float64

	ReadingEaseBands []Band
	DaleChallBands   []Band

	Terminators        string
	ClosingQuotes      string
	Apostrophes        string
	Contractions       []string
	TitleAbbreviations []string
	Abbreviations      []string
	MinSentenceWords   int
	DialogueDash       bool
	AcronymBreaks      bool
	ProperNouns        bool

	Syllabifier  string
	Vowels       string
	Hiatus       []string
	Glides       string
	SilentFinals []string
	SuffixRules  []SuffixRule

	easy       map[string]struct{}
	easySource string
	dict       map[string]int
	titles     map[string]struct{}
	abbrevs    map[string]struct{}
}

// IsEasyListed reports whether the lower-cased word is on the easy-word list.
func (c *Config) IsEasyListed(word string) bool {
	_, ok := c.easy[word]
	return ok
}

// EasyWordCount returns the size of the easy-word list.
func (c *Config) EasyWordCount() int {
	return len(c.easy)
}

// EasyWordSource names where the easy-word list came from.
func (c *Config) EasyWordSource() string {
	return c.easySource
}

// DefaultDictionary returns a copy of the packaged syllable dictionary.
func (c *Config) DefaultDictionary() map[string]int {
	out := make(map[string]int, len(c.dict))
	for k, v := range c.dict {
		out[k] = v
	}
	return out
}

// WithEasyWords returns a copy of the config that uses the given easy-word list.
func (c *Config) WithEasyWords(source string, words []string) *Config {
	clone := *c
	clone.easy = make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		clone.easy[clone.Lower(w)] = struct{}{}
	}
	clone.easySource = source
	return &clone
}

// EasyWords returns the easy-word list in sorted order.
func (c *Config) EasyWords() []string {
	out := make([]string, 0, len(c.easy))
	for w := range c.easy {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Caser returns a new lower-casing transformer for the locale.
// Casers keep state, so callers must not share one across goroutines.
func (c *Config) Caser() cases.Caser {
	return cases.Lower(c.Tag)
}

// Lower lower-cases s with the locale's casing rules.
func (c *Config) Lower(s string) string {
	return cases.Lower(c.Tag).String(s)
}

func (c *Config) IsTerminator(r rune) bool   { return strings.ContainsRune(c.Terminators, r) }
func (c *Config) IsClosingQuote(r rune) bool { return strings.ContainsRune(c.ClosingQuotes, r) }
func (c *Config) IsApostrophe(r rune) bool   { return strings.ContainsRune(c.Apostrophes, r) }
func (c *Config) IsVowel(r rune) bool        { return strings.ContainsRune(c.Vowels, r) }
func (c *Config) IsGlide(r rune) bool        { return strings.ContainsRune(c.Glides, r) }

// IsTitleAbbreviation reports whether token (lower-cased, without the final
// period) is an abbreviation that never ends a sentence.
func (c *Config) IsTitleAbbreviation(token string) bool {
	_, ok := c.titles[token]
	return ok
}

// IsAbbreviation reports whether token ends a sentence only before a capital.
func (c *Config) IsAbbreviation(token string) bool {
	_, ok := c.abbrevs[token]
	return ok
}

// ReadingEaseGrades maps a Flesch reading-ease score to grade levels.
func (c *Config) ReadingEaseGrades(score float64) []int {
	if len(c.ReadingEaseBands) == 0 {
		return nil
	}
	for _, band := range c.ReadingEaseBands[:len(c.ReadingEaseBands)-1] {
		if score >= band.Bound {
			return band.Grades
		}
	}
	return c.ReadingEaseBands[len(c.ReadingEaseBands)-1].Grades
}

// DaleChallGrades maps a Dale-Chall score to grade levels.
func (c *Config) DaleChallGrades(score float64) []int {
	if len(c.DaleChallBands) == 0 {
		return nil
	}
	for _, band := range c.DaleChallBands[:len(c.DaleChallBands)-1] {
		if score < band.Bound {
			return band.Grades
		}
	}
	return c.DaleChallBands[len(c.DaleChallBands)-1].Grades
}
