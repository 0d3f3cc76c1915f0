package syllable

import (
	"unicode"

	"golang.org/x/text/cases"

	"github.com/verte-zerg/readgrade/internal/locale"
)

// Estimator resolves syllable counts for one locale and dictionary snapshot.
// It keeps a casing transformer, so it must not be shared across goroutines.
type Estimator struct {
	dict      *Dictionary
	heuristic Heuristic
	caser     cases.Caser
}

// NewEstimator builds an estimator. A nil dictionary means heuristics only.
func NewEstimator(cfg *locale.Config, dict *Dictionary) *Estimator {
	return &Estimator{
		dict:      dict,
		heuristic: HeuristicFor(cfg),
		caser:     cfg.Caser(),
	}
}

// Word returns the syllable count for a single token. Empty tokens have
// zero syllables; any other token has at least one.
func (e *Estimator) Word(word string) int {
	n, _ := e.Explain(word)
	return n
}

// Explain returns the count together with the layer that produced it.
func (e *Estimator) Explain(word string) (int, Source) {
	if word == "" {
		return 0, SourceHeuristic
	}
	lower := e.caser.String(word)
	if n, src := e.dict.Lookup(lower); src != SourceHeuristic {
		return n, src
	}
	letters := make([]rune, 0, len(lower))
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsMark(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 1, SourceHeuristic
	}
	return max(e.heuristic.Syllables(letters), 1), SourceHeuristic
}

// Count sums the estimates for words.
func (e *Estimator) Count(words []string) int {
	total := 0
	for _, w := range words {
		total += e.Word(w)
	}
	return total
}
