// Package syllable estimates syllable counts from dictionaries and heuristics.
package syllable

import (
	"strings"

	"github.com/verte-zerg/readgrade/internal/dictstore"
)

// Source identifies where a syllable count came from.
type Source int

const (
	SourceHeuristic Source = iota
	SourceDefault
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceDefault:
		return "default"
	default:
		return "heuristic"
	}
}

// Dictionary is a two-layer syllable dictionary. The user layer wins.
type Dictionary struct {
	defaults map[string]int
	user     map[string]int
}

// NewDictionary validates both layers. Either may be nil.
func NewDictionary(defaults, user map[string]int) (*Dictionary, error) {
	d, err := dictstore.Validate(defaults)
	if err != nil {
		return nil, err
	}
	u, err := dictstore.Validate(user)
	if err != nil {
		return nil, err
	}
	return &Dictionary{defaults: d, user: u}, nil
}

// Lookup returns the count for a lower-cased word and the layer it came from.
// The Source is SourceHeuristic when neither layer has the word.
func (d *Dictionary) Lookup(word string) (int, Source) {
	if d == nil {
		return 0, SourceHeuristic
	}
	key := normalizeKey(word)
	if n, ok := d.user[key]; ok {
		return n, SourceUser
	}
	if n, ok := d.defaults[key]; ok {
		return n, SourceDefault
	}
	return 0, SourceHeuristic
}

// User returns a copy of the user layer.
func (d *Dictionary) User() map[string]int {
	return copyTerms(d.user)
}

// Defaults returns a copy of the default layer.
func (d *Dictionary) Defaults() map[string]int {
	return copyTerms(d.defaults)
}

// Len returns the number of distinct words across both layers.
func (d *Dictionary) Len() int {
	n := len(d.defaults)
	for w := range d.user {
		if _, ok := d.defaults[w]; !ok {
			n++
		}
	}
	return n
}

func normalizeKey(word string) string {
	return strings.ReplaceAll(strings.TrimSpace(word), "’", "'")
}

func copyTerms(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
