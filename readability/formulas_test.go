package readability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortTextFormulas(t *testing.T) {
	e := newEngine(t)
	assert.InDelta(t, 83.32, e.FleschReadingEase(shortText), 1e-9)
	assert.InDelta(t, 2.88, e.FleschKincaidGrade(shortText), 1e-9)
	assert.InDelta(t, 4.62, e.AutomatedReadabilityIndex(shortText), 1e-9)
	assert.InDelta(t, 6.504, e.ColemanLiauIndex(shortText), 1e-9)
	assert.InDelta(t, 2.5, e.LinsearWriteFormula(shortText), 1e-9)
	assert.InDelta(t, 10.0, e.GunningFog(shortText), 1e-9)
	assert.InDelta(t, 8.841846274778883, e.SmogIndex(shortText), 1e-9)
	assert.InDelta(t, 25.0, e.Lix(shortText), 1e-9)
	assert.InDelta(t, 1.0, e.Rix(shortText), 1e-9)
	assert.InDelta(t, 6.0, e.McAlpineEFLAW(shortText), 1e-9)
	assert.InDelta(t, 8.0, e.Forcast(shortText), 1e-9)

	dc, err := e.DaleChallReadabilityScore(shortText)
	require.NoError(t, err)
	assert.InDelta(t, 10.2005, dc, 1e-9)
	dc2, err := e.DaleChallReadabilityScoreV2(shortText)
	require.NoError(t, err)
	assert.InDelta(t, 7.0425, dc2, 1e-9)

	sp, err := e.SpacheReadability(shortText)
	require.NoError(t, err)
	assert.InDelta(t, 3.264, sp, 1e-9)
	spInt, err := e.SpacheReadability(shortText, WithIntegerOutput())
	require.NoError(t, err)
	assert.Equal(t, 3.0, spInt)
}

func TestShortTextStatistics(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, 25, e.CharCount(shortText, true))
	assert.Equal(t, 29, e.CharCount(shortText, false))
	assert.Equal(t, 24, e.LetterCount(shortText, true))
	assert.Equal(t, 5, e.LexiconCount(shortText, true))
	assert.Equal(t, 7, e.SyllableCount(shortText))
	assert.Equal(t, 1, e.SentenceCount(shortText))
	assert.Equal(t, 5.0, e.AvgSentenceLength(shortText))
	assert.Equal(t, 5.0, e.WordsPerSentence(shortText))
	assert.InDelta(t, 1.4, e.AvgSyllablesPerWord(shortText), 1e-12)
	assert.InDelta(t, 0.2, e.AvgSentencePerWord(shortText), 1e-12)
	assert.Equal(t, 1, e.PolysyllableCount(shortText))
	assert.Equal(t, 4, e.MonosyllableCount(shortText))
	assert.Equal(t, 1, e.DifficultWords(shortText, 0))
	assert.Equal(t, []string{"sunglasses"}, e.DifficultWordsList(shortText, 0))
	assert.True(t, e.IsDifficultWord("sunglasses"))
	assert.False(t, e.IsDifficultWord("dogs"))

	stats := e.Statistics(shortText)
	assert.Equal(t, 25, stats.Characters)
	assert.Equal(t, 29, stats.CharactersWithSpaces)
	assert.Equal(t, 1, stats.Miniwords)
	assert.Equal(t, 1, stats.LongWords)
	assert.InDelta(t, 4.8, stats.AvgLettersPerWord, 1e-12)
}

func TestLongTextCounts(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")

	assert.Equal(t, 1748, e.CharCount(long, true))
	assert.Equal(t, 2123, e.CharCount(long, false))
	assert.Equal(t, 1686, e.LetterCount(long, true))
	assert.Equal(t, 372, e.LexiconCount(long, true))
	assert.Equal(t, 376, e.LexiconCount(long, false))
	assert.Equal(t, 151, e.MiniwordCount(long, 3))
	assert.Equal(t, 78, e.LongWordCount(long))
	assert.Equal(t, 17, e.SentenceCount(long))
	assert.Equal(t, 111.60000000000001, e.ReadingTime(long))
	assert.Equal(t, 541, e.SyllableCount(long))
	assert.Equal(t, 37, e.PolysyllableCount(long))
	assert.InDelta(t, 21.88235294117647, e.AvgSentenceLength(long), 1e-12)

	assert.InDelta(t, 11.643111954459208, e.AutomatedReadabilityIndex(long), 1e-9)
	assert.InDelta(t, 9.496989247311827, e.ColemanLiauIndex(long), 1e-9)
	assert.InDelta(t, 42.85009487666034, e.Lix(long), 1e-9)
	assert.InDelta(t, 4.588235294117647, e.Rix(long), 1e-12)
	assert.InDelta(t, 30.764705882352942, e.McAlpineEFLAW(long), 1e-12)
	assert.Equal(t, 30.8, e.McAlpineEFLAW(long, WithRounding(1)))
}

func TestLongTextFormulas(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")

	assert.InDelta(t, 61.59054079696395, e.FleschReadingEase(long), 1e-9)
	assert.InDelta(t, 10.10487033523087, e.FleschKincaidGrade(long), 1e-9)
	assert.InDelta(t, 11.557038098267885, e.SmogIndex(long), 1e-9)

	dc, err := e.DaleChallReadabilityScore(long)
	require.NoError(t, err)
	assert.InDelta(t, 6.631945351043644, dc, 1e-9)

	assert.Equal(t, 37, e.DifficultWords(long, 2))
	dc2, err := e.DaleChallReadabilityScoreV2(long)
	require.NoError(t, err)
	assert.InDelta(t, 6.292375458570525, dc2, 1e-9)

	hard := e.DifficultWords(long, 3)
	assert.Positive(t, hard)
	assert.Less(t, hard, 37)
	fog := 0.4 * (e.AvgSentenceLength(long) + 100*float64(hard)/372)
	assert.InDelta(t, fog, e.GunningFog(long), 1e-9)
}

func TestEasyTextSpache(t *testing.T) {
	e := newEngine(t)
	easy := readFixture(t, "easy.txt")

	assert.Equal(t, 11, e.SentenceCount(easy))
	sp, err := e.SpacheReadability(easy, WithIntegerOutput())
	require.NoError(t, err)
	assert.Equal(t, 2.0, sp)

	raw, err := e.SpacheReadability(easy)
	require.NoError(t, err)
	assert.Greater(t, raw, 2.0)
	assert.Less(t, raw, 3.0)
}

func TestEmptyTextSentinels(t *testing.T) {
	e := newEngine(t)
	for _, text := range []string{"", "   \n\t", "!!! ..."} {
		assert.Equal(t, 0.0, e.FleschReadingEase(text))
		assert.Equal(t, 0.0, e.FleschKincaidGrade(text))
		assert.Equal(t, 0.0, e.SmogIndex(text))
		assert.Equal(t, 0.0, e.GunningFog(text))
		assert.Equal(t, 0.0, e.Lix(text))
		assert.Equal(t, 0.0, e.Rix(text))
		assert.Equal(t, 0.0, e.McAlpineEFLAW(text))
		assert.Equal(t, -1.0, e.LinsearWriteFormula(text))
		dc, err := e.DaleChallReadabilityScore(text)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dc)
		dc2, err := e.DaleChallReadabilityScoreV2(text)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dc2)
		sp, err := e.SpacheReadability(text)
		require.NoError(t, err)
		assert.Equal(t, 0.0, sp)

		assert.Equal(t, 0, e.SentenceCount(text))
		assert.Equal(t, 0.0, e.AvgSentenceLength(text))
		assert.Equal(t, "0th grade", e.TextStandard(text))
		assert.Equal(t, 0.0, e.TextStandardScore(text))
	}
}

func TestLocaleRestrictedFormulas(t *testing.T) {
	e := newEngine(t)
	_, err := e.FernandezHuerta(shortText)
	var ferr *FormulaLocaleError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "en", ferr.Locale)
	assert.Equal(t, []string{"es"}, ferr.Supported)
	assert.ErrorIs(t, err, ErrUnsupportedFormula)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = e.Score(Metric("bogus"), shortText)
	assert.ErrorIs(t, err, ErrUnknownMetric)

	require.NoError(t, e.SetLang("de"))
	_, err = e.DaleChallReadabilityScore(shortText)
	assert.ErrorIs(t, err, ErrUnsupportedFormula)
}

func TestSpanishFormulas(t *testing.T) {
	e := newEngine(t, WithLang("es"))
	text := "El perro come pan. La casa es grande."
	require.Equal(t, 2, e.SentenceCount(text))
	require.Equal(t, 12, e.SyllableCount(text))

	fh, err := e.FernandezHuerta(text)
	require.NoError(t, err)
	assert.InDelta(t, 112.76, fh, 1e-9)
	sp, err := e.SzigrisztPazos(text)
	require.NoError(t, err)
	assert.InDelta(t, 109.385, sp, 1e-9)
	gp, err := e.GutierrezPolini(text)
	require.NoError(t, err)
	assert.InDelta(t, 59.85, gp, 1e-9)
	cr, err := e.Crawford(text)
	require.NoError(t, err)
	assert.InDelta(t, -1.182, cr, 1e-9)
}

func TestGulpease(t *testing.T) {
	e := newEngine(t, WithLang("it"))
	v, err := e.GulpeaseIndex("Il gatto dorme. Il cane corre.")
	require.NoError(t, err)
	assert.InDelta(t, 89+350.0/6, v, 1e-9)
}

func TestWienerVariants(t *testing.T) {
	e := newEngine(t, WithLang("de"))
	text := "Der Hund schläft im Garten. Die Katze spielt mit dem Ball."
	seen := map[float64]bool{}
	for variant := 1; variant <= 4; variant++ {
		v, err := e.WienerSachtextformel(text, WithVariant(variant))
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 4)

	def, err := e.WienerSachtextformel(text)
	require.NoError(t, err)
	first, err := e.WienerSachtextformel(text, WithVariant(1))
	require.NoError(t, err)
	assert.Equal(t, first, def)

	for _, bad := range []int{0, 5} {
		_, err := e.WienerSachtextformel(text, WithVariant(bad))
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestOsman(t *testing.T) {
	e := newEngine(t, WithLang("ar"))
	v, err := e.Osman("ذهب الولد إلى المدرسة. قرأ الكتاب في المكتبة.")
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v))
	assert.Less(t, v, 200.791)
}

func TestPerCallRounding(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, 83.3, e.FleschReadingEase(shortText, WithRounding(1)))
	assert.Equal(t, 83.0, e.FleschReadingEase(shortText, WithRounding(0)))

	require.NoError(t, e.SetRounding(true, 1))
	assert.Equal(t, 83.3, e.FleschReadingEase(shortText))
	assert.InDelta(t, 83.32, e.FleschReadingEase(shortText, WithoutRounding()), 1e-9)

	_, err := e.Score(FleschReadingEase, shortText, WithRounding(-2))
	assert.ErrorIs(t, err, ErrInvalidPrecision)
	assert.Equal(t, 83.3, e.FleschReadingEase(shortText, WithRounding(-2)), "bad option falls back to engine policy")
}

func TestRoundingHalfAwayFromZero(t *testing.T) {
	p := RoundingPolicy{Enabled: true, Precision: 0}
	assert.Equal(t, 3.0, p.Apply(2.5))
	assert.Equal(t, -3.0, p.Apply(-2.5))
	assert.Equal(t, 2.5, RoundingPolicy{Precision: 0}.Apply(2.5))
}

func TestMetricCatalog(t *testing.T) {
	assert.Len(t, Metrics(), len(formulas))
	assert.True(t, FleschReadingEase.Universal())
	assert.False(t, Osman.Universal())
	assert.True(t, Osman.Supports("ar"))
	assert.False(t, Osman.Supports("en"))
	assert.True(t, FleschReadingEase.HigherIsEasier())
	assert.False(t, GunningFog.HigherIsEasier())

	es := MetricsFor("es")
	assert.Contains(t, es, FernandezHuerta)
	assert.NotContains(t, es, DaleChall)
	assert.NotContains(t, es, GulpeaseIndex)

	assert.True(t, FernandezHuerta.Supports("es_mx"))
	assert.True(t, SzigrisztPazos.Supports("es-MX"))
	assert.True(t, WienerSachtextformel.Supports("de_AT"))
	assert.True(t, DaleChall.Supports("en_GB"))
	assert.False(t, DaleChall.Supports("de_AT"))
	assert.False(t, Osman.Supports(""))
	assert.Equal(t, es, MetricsFor("es_MX"))

	m, err := ParseMetric("Gunning-Fog")
	require.NoError(t, err)
	assert.Equal(t, GunningFog, m)
	_, err = ParseMetric("nope")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}
