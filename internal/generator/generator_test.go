package generator

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentencesShape(t *testing.T) {
	words := []string{"dog", "cat", "sun", "über"}
	opts := Options{Sentences: 4, MinWords: 3, MaxWords: 5, Terminators: []rune{'!', '?'}}
	sentences := NewSeeded(1).Sentences(words, opts)
	require.Len(t, sentences, 4)
	for _, s := range sentences {
		first, _ := utf8.DecodeRuneInString(s)
		assert.True(t, unicode.IsUpper(first), s)
		assert.True(t, strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?"), s)
		n := len(strings.Fields(s))
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta"}
	opts := DefaultOptions()
	assert.Equal(t, NewSeeded(7).Text(words, opts), NewSeeded(7).Text(words, opts))
}

func TestLongBiasFavorsLongWords(t *testing.T) {
	words := []string{"a", "extraordinarily"}
	opts := Options{Sentences: 50, MinWords: 10, MaxWords: 10, LongBias: 5}
	text := strings.ToLower(NewSeeded(3).Text(words, opts))
	long := strings.Count(text, "extraordinarily")
	assert.Greater(t, long, 400)
}

func TestEmptyInputs(t *testing.T) {
	g := NewSeeded(1)
	assert.Nil(t, g.Sentences(nil, DefaultOptions()))
	assert.Nil(t, g.Sentences([]string{"x"}, Options{}))
}
