package textseg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestCharAndLetterCount(t *testing.T) {
	long := fixture(t, "long.txt")
	assert.Equal(t, 1748, CharCount(long, true))
	assert.Equal(t, 2123, CharCount(long, false))
	assert.Equal(t, 1686, LetterCount(long, true))
	assert.Greater(t, LetterCount(long, false), 1686)

	assert.Equal(t, 25, CharCount("Cool dogs wear da sunglasses.", true))
	assert.Equal(t, 29, CharCount("Cool dogs wear da sunglasses.", false))
	assert.Equal(t, 0, CharCount("", true))
	assert.Equal(t, 0, LetterCount("", false))
	assert.Equal(t, 5, LetterCount("héllo 42!", true))
}

func TestRemovePunctuation(t *testing.T) {
	en := lookup(t, "en")
	punct := fixture(t, "punct.txt")
	assert.Equal(t, fixture(t, "punct_keep.txt"), RemovePunctuation(punct, true, en))
	assert.Equal(t, fixture(t, "punct_strip.txt"), RemovePunctuation(punct, false, en))

	assert.Equal(t, "oclock", RemovePunctuation("o'clock", true, en), "not a contraction suffix")
	assert.Equal(t, "dont", RemovePunctuation("'dont'", true, en))

	fr := lookup(t, "fr")
	assert.Equal(t, "l'homme", RemovePunctuation("l'homme.", true, fr), "no suffix list keeps inner apostrophes")
}

func TestWordCounts(t *testing.T) {
	en := lookup(t, "en")
	long := fixture(t, "long.txt")

	assert.Equal(t, 372, LexiconCount(long, true, true, en))
	assert.Equal(t, 376, LexiconCount(long, false, true, en))
	assert.Equal(t, 0, LexiconCount("", true, true, en))

	words := Words(long, true, en)
	assert.Equal(t, 151, MiniwordCount(words, en.MiniWordLetters))
	assert.Equal(t, 78, LongWordCount(words, en.LongWordLetters))
	assert.Contains(t, words, "TV")
	assert.Contains(t, words, "There's")
}

func TestSentences(t *testing.T) {
	en := lookup(t, "en")

	assert.Equal(t, 17, SentenceCount(fixture(t, "long.txt"), en))
	assert.Equal(t, 11, SentenceCount(fixture(t, "easy.txt"), en))
	assert.Equal(t, 1, SentenceCount("Cool dogs wear da sunglasses.", en))
	assert.Equal(t, 1, SentenceCount("no terminator at all", en))
	assert.Equal(t, 0, SentenceCount("", en))
	assert.Equal(t, 0, SentenceCount("  ... !!", en))

	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "titles and initials",
			text: "Dr. Watson met J. R. Tolkien at noon today. They talked about old books.",
			want: []string{"Dr. Watson met J. R. Tolkien at noon today.", "They talked about old books."},
		},
		{
			name: "ellipsis and acronym",
			text: "Playing ... games matters a lot. Turn off the T.V. and do something else now.",
			want: []string{"Playing ... games matters a lot.", "Turn off the T.V.", "and do something else now."},
		},
		{
			name: "etc before lower case",
			text: "We bought apples, pears, etc. and then left. Then we ate them all.",
			want: []string{"We bought apples, pears, etc. and then left.", "Then we ate them all."},
		},
		{
			name: "closing quote",
			text: "He shouted \"Stop that now!\" Then he ran away quickly.",
			want: []string{"He shouted \"Stop that now!\"", "Then he ran away quickly."},
		},
		{
			name: "fragments merge",
			text: "He said hi to everyone! Why? Nobody knows the answer.",
			want: []string{"He said hi to everyone! Why?", "Nobody knows the answer."},
		},
		{
			name: "no split inside token",
			text: "Version 1.5 shipped on time. Everyone was happy about it.",
			want: []string{"Version 1.5 shipped on time.", "Everyone was happy about it."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sentences(tc.text, en))
		})
	}
}

func TestDialogueDash(t *testing.T) {
	text := "«Я сегодня очень устал!» — тихо сказал он брату. Потом он ушёл домой."
	ru := lookup(t, "ru")
	assert.Equal(t, []string{
		"«Я сегодня очень устал!» — тихо сказал он брату.",
		"Потом он ушёл домой.",
	}, Sentences(text, ru))

	en := lookup(t, "en")
	assert.Len(t, Sentences(text, en), 3)
}

func TestStripWord(t *testing.T) {
	assert.Equal(t, "day's", StripWord("\"day's,"))
	assert.Equal(t, "", StripWord("..."))
	assert.True(t, HasLetter("a1"))
	assert.False(t, HasLetter("1984"))
}
