// Package difficulty classifies words as easy or difficult for a locale.
package difficulty

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/verte-zerg/readgrade/internal/locale"
	"github.com/verte-zerg/readgrade/internal/syllable"
	"github.com/verte-zerg/readgrade/internal/textseg"
)

// Token is a word positioned in its sentence.
type Token struct {
	Text     string
	Sentence int
	Initial  bool
}

// Classifier decides word difficulty from the easy-word list and syllable counts.
type Classifier struct {
	cfg   *locale.Config
	est   *syllable.Estimator
	caser cases.Caser
}

// New returns a classifier. It is not safe for concurrent use.
func New(cfg *locale.Config, est *syllable.Estimator) *Classifier {
	return &Classifier{cfg: cfg, est: est, caser: cfg.Caser()}
}

// Lemmas returns the lower-cased word followed by the forms produced by the
// locale's suffix rules.
func (c *Classifier) Lemmas(word string) []string {
	lower := strings.ReplaceAll(c.caser.String(word), "’", "'")
	out := []string{lower}
	seen := map[string]bool{lower: true}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	if head, _, ok := strings.Cut(lower, "'"); ok && len(c.cfg.Contractions) > 0 {
		add(head)
	}
	runes := []rune(lower)
	for _, rule := range c.cfg.SuffixRules {
		suffix := []rune(rule.Suffix)
		if len(runes) <= len(suffix)+1 || !strings.HasSuffix(lower, rule.Suffix) {
			continue
		}
		stem := runes[:len(runes)-len(suffix)]
		add(string(stem) + rule.Replacement)
		if rule.Replacement == "" && doubledConsonant(stem, c.cfg) {
			add(string(stem[:len(stem)-1]))
		}
	}
	return out
}

func doubledConsonant(stem []rune, cfg *locale.Config) bool {
	n := len(stem)
	return n >= 3 && stem[n-1] == stem[n-2] && unicode.IsLetter(stem[n-1]) && !cfg.IsVowel(stem[n-1])
}

// IsEasy reports whether the word or one of its lemmas is on the easy-word list.
func (c *Classifier) IsEasy(word string) bool {
	for _, lemma := range c.Lemmas(word) {
		if c.cfg.IsEasyListed(lemma) {
			return true
		}
	}
	return false
}

// IsDifficult reports whether a word is off the easy list and has at least
// threshold syllables.
func (c *Classifier) IsDifficult(word string, threshold int) bool {
	if !textseg.HasLetter(word) || c.IsEasy(word) {
		return false
	}
	return c.est.Word(word) >= threshold
}

// IsDaleChallDifficult reports whether a word with letters is off the easy list.
func (c *Classifier) IsDaleChallDifficult(word string) bool {
	return textseg.HasLetter(word) && !c.IsEasy(word)
}

// Tokens splits sentences into words, marking the first word of each.
func (c *Classifier) Tokens(sentences []string, keepApostrophes bool) []Token {
	var tokens []Token
	for i, s := range sentences {
		for j, w := range textseg.Words(s, keepApostrophes, c.cfg) {
			tokens = append(tokens, Token{Text: w, Sentence: i, Initial: j == 0})
		}
	}
	return tokens
}

// ProperNoun reports whether the token is treated as a name.
func (c *Classifier) ProperNoun(tok Token) bool {
	if !c.cfg.ProperNouns || tok.Initial {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok.Text)
	return unicode.IsUpper(r)
}

// DifficultWords returns the distinct difficult words of the sentences in
// order of first appearance, keeping the casing of that first occurrence.
func (c *Classifier) DifficultWords(sentences []string, threshold int, keepApostrophes bool) []string {
	var out []string
	seen := map[string]bool{}
	for _, tok := range c.Tokens(sentences, keepApostrophes) {
		key := c.caser.String(tok.Text)
		if seen[key] || c.ProperNoun(tok) || !c.IsDifficult(tok.Text, threshold) {
			continue
		}
		seen[key] = true
		out = append(out, tok.Text)
	}
	return out
}

// DaleChallCount counts word tokens (not distinct words) that are off the easy list.
func (c *Classifier) DaleChallCount(sentences []string, keepApostrophes bool) int {
	count := 0
	for _, tok := range c.Tokens(sentences, keepApostrophes) {
		if !c.ProperNoun(tok) && c.IsDaleChallDifficult(tok.Text) {
			count++
		}
	}
	return count
}
