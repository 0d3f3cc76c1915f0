package locale

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/readgrade/internal/errs"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := DefaultRegistry()
	require.NoError(t, err)
	return reg
}

func TestEmbeddedLocales(t *testing.T) {
	reg := defaultRegistry(t)
	assert.Equal(t, []string{"ar", "de", "en", "es", "fr", "hu", "it", "nl", "pl", "ru"}, reg.IDs())

	en, err := reg.Lookup("en")
	require.NoError(t, err)
	assert.Equal(t, "English", en.Name)
	assert.Equal(t, 206.835, en.FleschBase)
	assert.Equal(t, 3, en.PolysyllableSyllables)
	assert.Equal(t, 2, en.DifficultSyllables)
	assert.Equal(t, "english", en.Syllabifier)
	assert.True(t, en.ProperNouns)
	assert.True(t, en.IsTitleAbbreviation("mr"))
	assert.True(t, en.IsAbbreviation("etc"))
	assert.Equal(t, "embedded:en", en.EasyWordSource())

	pl, err := reg.Lookup("pl")
	require.NoError(t, err)
	assert.Equal(t, 4, pl.PolysyllableSyllables)
	assert.Equal(t, 206.835, pl.FleschBase, "unset fields come from defaults")

	hu, err := reg.Lookup("hu")
	require.NoError(t, err)
	assert.Equal(t, 5, hu.PolysyllableSyllables)

	ru, err := reg.Lookup("ru")
	require.NoError(t, err)
	assert.True(t, ru.DialogueDash)
	assert.True(t, ru.IsTerminator('…'))
}

func TestLookupNormalizesKeys(t *testing.T) {
	reg := defaultRegistry(t)
	for _, id := range []string{"EN", "en_GB", "en-us", " en "} {
		cfg, err := reg.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, "en", cfg.ID, id)
	}
	cfg, err := reg.Lookup("de_AT")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.ID)

	for _, id := range []string{"", "xx", "klingon-language"} {
		_, err := reg.Lookup(id)
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, errs.ErrUnknownLocale), id)
		assert.True(t, errors.Is(err, errs.ErrNotFound), id)
	}
}

func TestGradeBands(t *testing.T) {
	cfg, err := defaultRegistry(t).Lookup("en")
	require.NoError(t, err)

	assert.Equal(t, []int{5}, cfg.ReadingEaseGrades(95))
	assert.Equal(t, []int{6}, cfg.ReadingEaseGrades(83.32))
	assert.Equal(t, []int{8, 9}, cfg.ReadingEaseGrades(60))
	assert.Equal(t, []int{13}, cfg.ReadingEaseGrades(-12))

	assert.Equal(t, []int{4}, cfg.DaleChallGrades(4.9))
	assert.Equal(t, []int{5, 6}, cfg.DaleChallGrades(5))
	assert.Equal(t, []int{13, 14, 15}, cfg.DaleChallGrades(9.99))
	assert.Equal(t, []int{16}, cfg.DaleChallGrades(10.2))
}

func TestEasyWordsAndDictionary(t *testing.T) {
	cfg, err := defaultRegistry(t).Lookup("en")
	require.NoError(t, err)

	assert.True(t, cfg.IsEasyListed("dog"))
	assert.True(t, cfg.IsEasyListed("cool"))
	assert.False(t, cfg.IsEasyListed("sunglasses"))
	assert.Greater(t, cfg.EasyWordCount(), 1000)

	dict := cfg.DefaultDictionary()
	assert.Equal(t, 3, dict["creative"])
	dict["creative"] = 9
	assert.Equal(t, 3, cfg.DefaultDictionary()["creative"], "returned map is a copy")

	custom := cfg.WithEasyWords("file:test", []string{"Sunglasses", " ", "dog"})
	assert.True(t, custom.IsEasyListed("sunglasses"))
	assert.Equal(t, 2, custom.EasyWordCount())
	assert.Equal(t, []string{"dog", "sunglasses"}, custom.EasyWords())
	assert.False(t, cfg.IsEasyListed("sunglasses"), "original config is untouched")
}

const testTable = `
[defaults]
reading-wpm = 200.0
terminators = ".!?"
vowels = "aeiouy"

[locales.en]
name = "English"
flesch-base = 206.835
suffix-rules = ["s>"]

[locales.en_gb]
inherit = "en"
name = "English (UK)"
reading-wpm = 180.0
`

func TestTableSourceInheritance(t *testing.T) {
	files := fstest.MapFS{
		"en/easy_words.txt":   {Data: []byte("# list\ncolour dog\n")},
		"en/custom_dict.json": {Data: []byte(`{"CUSTOM_SYLLABLE_DICT": {"idea": 3}}`)},
	}
	src, err := NewTableSource([]byte(testTable), files)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "en_gb"}, src.IDs())

	cfg, err := NewRegistry(src).Lookup("en-GB")
	require.NoError(t, err)
	assert.Equal(t, "en_gb", cfg.ID)
	assert.Equal(t, "English (UK)", cfg.Name)
	assert.Equal(t, 206.835, cfg.FleschBase)
	assert.Equal(t, 180.0, cfg.ReadingWPM)
	assert.Equal(t, []SuffixRule{{Suffix: "s", Replacement: ""}}, cfg.SuffixRules)
	assert.True(t, cfg.IsEasyListed("colour"))
	assert.Equal(t, "embedded:en", cfg.EasyWordSource())
	assert.Equal(t, map[string]int{"idea": 3}, cfg.DefaultDictionary())
}

func TestTableSourceErrors(t *testing.T) {
	_, err := NewTableSource([]byte("not = [valid"), nil)
	var perr *errs.ParseError
	assert.True(t, errors.As(err, &perr))

	_, err = NewTableSource([]byte(`
[defaults]
reading-wpm = 200.0
terminators = "."
[locales.en_gb]
inherit = "en"
`), nil)
	assert.True(t, errors.Is(err, errs.ErrUnknownLocale))

	_, err = NewTableSource([]byte(`
[defaults]
reading-wpm = 200.0
terminators = "."
[locales.en]
suffix-rules = ["broken"]
`), nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	_, err = NewTableSource([]byte(`
[locales.en]
name = "English"
`), nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput), "missing terminators")
}
