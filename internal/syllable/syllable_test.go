package syllable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/readgrade/internal/errs"
	"github.com/verte-zerg/readgrade/internal/locale"
)

func lookup(t *testing.T, id string) *locale.Config {
	t.Helper()
	reg, err := locale.DefaultRegistry()
	require.NoError(t, err)
	cfg, err := reg.Lookup(id)
	require.NoError(t, err)
	return cfg
}

func estimator(t *testing.T, id string) *Estimator {
	t.Helper()
	cfg := lookup(t, id)
	dict, err := NewDictionary(cfg.DefaultDictionary(), nil)
	require.NoError(t, err)
	return NewEstimator(cfg, dict)
}

func TestEnglishWords(t *testing.T) {
	est := estimator(t, "en")
	words := map[string]int{
		"faeries": 2, "relived": 2, "couple": 2, "enriched": 2, "us": 1, "too": 1,
		"monopoly": 4, "him": 1, "he": 1, "without": 2, "creative": 3, "every": 2,
		"stimulating": 4, "life": 1, "cupboards": 2, "day's": 1, "forgotten": 3,
		"through": 1, "marriage": 2, "hello": 2, "the": 1, "sentences": 3,
		"songwriter": 3, "removing": 3, "interpersonal": 5,
		"Cool": 1, "dogs": 1, "wear": 1, "da": 1, "sunglasses": 3,
		"being": 2, "playing": 2, "played": 1, "wanted": 2, "lovely": 2, "useless": 2,
		"radio": 3, "medium": 3, "tables": 2, "makes": 1, "changes": 2, "wishes": 2,
		"continuing": 4, "whole": 1, "people": 2, "family": 3, "beautiful": 3,
	}
	for word, want := range words {
		assert.Equal(t, want, est.Word(word), word)
	}
	assert.Equal(t, 7, est.Count([]string{"Cool", "dogs", "wear", "da", "sunglasses"}))
	assert.Equal(t, 0, est.Word(""))
	assert.Equal(t, 1, est.Word("500"), "non-empty tokens have at least one syllable")
}

func TestOtherLocales(t *testing.T) {
	cases := map[string]map[string]int{
		"es": {"canción": 2, "poeta": 3, "que": 1, "ciudad": 2, "leer": 2, "aéreo": 4, "día": 2},
		"de": {"Theater": 3, "Haus": 1, "Schule": 2, "Radio": 3, "Freiheit": 2, "Mädchen": 2},
		"it": {"mare": 2, "aereo": 4, "casa": 2},
		"fr": {"table": 1, "tables": 1, "parlent": 2, "regardent": 2, "maison": 2, "beau": 1, "été": 2},
		"ru": {"молоко": 3, "здравствуйте": 3, "Дом": 1},
		"hu": {"köszönöm": 3, "ház": 1},
		"pl": {"nie": 1, "dziękuję": 3, "Polska": 2},
		"ar": {"كتاب": 2, "كَتَبَ": 3},
	}
	for id, words := range cases {
		est := estimator(t, id)
		for word, want := range words {
			assert.Equal(t, want, est.Word(word), "%s: %s", id, word)
		}
	}
}

func TestDictionaryLayers(t *testing.T) {
	cfg := lookup(t, "en")
	dict, err := NewDictionary(map[string]int{"idea": 3, "testterm": 2}, map[string]int{"TestTerm": 4})
	require.NoError(t, err)

	n, src := dict.Lookup("testterm")
	assert.Equal(t, 4, n)
	assert.Equal(t, SourceUser, src)
	n, src = dict.Lookup("idea")
	assert.Equal(t, 3, n)
	assert.Equal(t, SourceDefault, src)
	_, src = dict.Lookup("banana")
	assert.Equal(t, SourceHeuristic, src)
	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, "user", SourceUser.String())

	est := NewEstimator(cfg, dict)
	n, src = est.Explain("TestTerm")
	assert.Equal(t, 4, n)
	assert.Equal(t, SourceUser, src)

	heuristicOnly := NewEstimator(cfg, nil)
	assert.Equal(t, 2, heuristicOnly.Word("testterm"))

	user := dict.User()
	user["testterm"] = 9
	n, _ = dict.Lookup("testterm")
	assert.Equal(t, 4, n, "User returns a copy")
}

func TestDictionaryValidation(t *testing.T) {
	_, err := NewDictionary(map[string]int{"word": 0}, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidSyllableCount))
	_, err = NewDictionary(nil, map[string]int{"": 2})
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}
