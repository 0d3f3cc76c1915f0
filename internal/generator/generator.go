// Package generator builds sample text from a word pool.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Options shape the generated text.
type Options struct {
	Sentences int
	MinWords  int
	MaxWords  int
	// CommaPct is the probability of a comma after a non-final word (0-1).
	CommaPct float64
	// LongBias weights word choice toward longer words. Zero picks uniformly.
	LongBias float64
	// Terminators are chosen uniformly to end each sentence.
	Terminators []rune
}

// DefaultOptions returns plain declarative sentences of 6 to 14 words.
func DefaultOptions() Options {
	return Options{Sentences: 5, MinWords: 6, MaxWords: 14, CommaPct: 0.05, Terminators: []rune{'.'}}
}

// Generator produces randomized sample text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Sentences returns opts.Sentences sentences drawn from words.
func (g *Generator) Sentences(words []string, opts Options) []string {
	if len(words) == 0 || opts.Sentences <= 0 {
		return nil
	}
	lo, hi := max(opts.MinWords, 1), max(opts.MaxWords, opts.MinWords, 1)
	terminators := opts.Terminators
	if len(terminators) == 0 {
		terminators = []rune{'.'}
	}
	pick := g.picker(words, opts.LongBias)

	out := make([]string, 0, opts.Sentences)
	for i := 0; i < opts.Sentences; i++ {
		n := lo + g.rnd.Intn(hi-lo+1)
		var b strings.Builder
		for j := 0; j < n; j++ {
			word := pick()
			if j == 0 {
				word = capitalize(word)
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(word)
			if j < n-1 && opts.CommaPct > 0 && g.rnd.Float64() < opts.CommaPct {
				b.WriteByte(',')
			}
		}
		b.WriteRune(terminators[g.rnd.Intn(len(terminators))])
		out = append(out, b.String())
	}
	return out
}

// Text joins generated sentences with single spaces.
func (g *Generator) Text(words []string, opts Options) string {
	return strings.Join(g.Sentences(words, opts), " ")
}

// picker returns a uniform or length-weighted word chooser.
func (g *Generator) picker(words []string, bias float64) func() string {
	if bias <= 0 {
		return func() string { return words[g.rnd.Intn(len(words))] }
	}
	weights := make([]float64, len(words))
	total := 0.0
	for i, w := range words {
		weights[i] = 1 + float64(utf8.RuneCountInString(w))*bias
		total += weights[i]
	}
	return func() string {
		r := g.rnd.Float64() * total
		acc := 0.0
		for i, w := range weights {
			acc += w
			if r <= acc {
				return words[i]
			}
		}
		return words[len(words)-1]
	}
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
