package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextStandard(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, "2nd and 3rd grade", e.TextStandard(shortText))
	assert.Equal(t, 3.0, e.TextStandardScore(shortText))

	assert.NotPanics(t, func() {
		e.TextStandard("ありがとうございます")
		e.TextStandard("Привет, мир!")
	})
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{0: "0th", 1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 112: "112th"}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
	assert.Equal(t, "9th and 10th grade", gradeRange(10))
}

func TestReportMatchesScore(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")
	optionSets := [][]CallOption{
		nil,
		{WithRounding(1)},
		{WithoutRounding()},
		{WithTopN(2), WithoutWordAnalysis()},
		{WithoutSuggestions(), WithRounding(3)},
	}
	for _, m := range []Metric{FleschReadingEase, FleschKincaidGrade, GunningFog, LinsearWriteFormula, SmogIndex, DaleChall} {
		for _, opts := range optionSets {
			want, err := e.Score(m, long, opts...)
			require.NoError(t, err)
			report, err := e.Report(m, long, opts...)
			require.NoError(t, err)
			assert.Equal(t, want, report.Score, m)
			assert.Equal(t, m, report.Metric)
		}
	}
}

func TestReportBeforeScore(t *testing.T) {
	long := readFixture(t, "long.txt")
	for _, m := range []Metric{FleschReadingEase, FleschKincaidGrade, GunningFog, SmogIndex, DaleChall, SpacheReadability} {
		for _, opts := range [][]CallOption{nil, {WithRounding(2)}, {WithTopN(1), WithoutSuggestions()}} {
			e := newEngine(t)
			report, err := e.Report(m, long, opts...)
			require.NoError(t, err)

			other := newEngine(t)
			want, err := other.Score(m, long, opts...)
			require.NoError(t, err)
			assert.Equal(t, want, report.Score, m)

			again, err := e.Score(m, long, opts...)
			require.NoError(t, err)
			assert.Equal(t, report.Score, again, m)
		}
	}
}

func TestReportRanking(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")

	report, err := e.Report(FleschKincaidGrade, long)
	require.NoError(t, err)
	require.Len(t, report.ComplexSentences, DefaultTopN)
	for i := 1; i < len(report.ComplexSentences); i++ {
		assert.GreaterOrEqual(t, report.ComplexSentences[i-1].Score, report.ComplexSentences[i].Score)
	}
	for _, c := range report.ComplexSentences {
		assert.NotNil(t, c.DifficultWords)
		assert.NotNil(t, c.Suggestions)
		assert.Positive(t, c.Length)
		assert.Nil(t, c.FlaggedBy)
	}

	ease, err := e.Report(FleschReadingEase, long, WithTopN(3))
	require.NoError(t, err)
	require.Len(t, ease.ComplexSentences, 3)
	assert.LessOrEqual(t, ease.ComplexSentences[0].Score, ease.ComplexSentences[1].Score)
	assert.Equal(t, 17, ease.Summary.Sentences)
	assert.Equal(t, 3, ease.Summary.Flagged)
}

func TestReportOptionalFields(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")

	bare, err := e.Report(GunningFog, long, WithoutWordAnalysis(), WithoutSuggestions())
	require.NoError(t, err)
	require.NotEmpty(t, bare.ComplexSentences)
	for _, c := range bare.ComplexSentences {
		assert.Nil(t, c.DifficultWords)
		assert.Nil(t, c.Suggestions)
	}
	assert.Equal(t, 0, bare.Summary.Suggestions)

	_, err = e.Report(GunningFog, long, WithTopN(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSuggestions(t *testing.T) {
	e := newEngine(t)
	text := "The extraordinarily complicated administrative regulations, which were introduced, revised, and reinterpreted repeatedly by several independent committees, ultimately confused practically everybody involved in the organization."
	report, err := e.Report(FleschKincaidGrade, text)
	require.NoError(t, err)
	require.Len(t, report.ComplexSentences, 1)
	c := report.ComplexSentences[0]
	require.NotEmpty(t, c.Suggestions)
	assert.Contains(t, c.Suggestions[0], "Split this sentence")
	assert.Contains(t, c.Suggestions[len(c.Suggestions)-1], "commas")
	assert.Equal(t, 1, report.Summary.LongSentences)
	assert.Equal(t, len(c.Suggestions), report.Summary.Suggestions)
	assert.Positive(t, report.Summary.DifficultWords)
}

func TestReportLocaleErrors(t *testing.T) {
	e := newEngine(t)
	_, err := e.Report(Osman, shortText)
	assert.ErrorIs(t, err, ErrUnsupportedFormula)

	report, err := e.Report(FleschKincaidGrade, "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Score)
	assert.Empty(t, report.ComplexSentences)
}

func TestTextStandardReport(t *testing.T) {
	e := newEngine(t)
	long := readFixture(t, "long.txt")

	report, err := e.TextStandardReport(long)
	require.NoError(t, err)
	assert.Equal(t, e.TextStandard(long), report.Grade)
	assert.Equal(t, e.TextStandardScore(long), report.ConsensusScore)
	assert.Len(t, report.IndividualScores, 8)
	require.NotEmpty(t, report.ComplexSentences)
	for i, c := range report.ComplexSentences {
		assert.NotEmpty(t, c.FlaggedBy)
		if i > 0 {
			assert.GreaterOrEqual(t, len(report.ComplexSentences[i-1].FlaggedBy), len(c.FlaggedBy))
		}
	}
	fkg, err := e.Score(FleschKincaidGrade, long)
	require.NoError(t, err)
	assert.Equal(t, fkg, report.IndividualScores[FleschKincaidGrade])

	short, err := e.TextStandardReport(shortText, WithRounding(1))
	require.NoError(t, err)
	assert.Equal(t, "2nd and 3rd grade", short.Grade)
	assert.Equal(t, 83.3, short.IndividualScores[FleschReadingEase])

	de := newEngine(t, WithLang("de"))
	deReport, err := de.TextStandardReport("Der Hund schläft im Garten. Die Katze spielt mit dem Ball.")
	require.NoError(t, err)
	assert.Len(t, deReport.IndividualScores, 7)
	assert.NotContains(t, deReport.IndividualScores, DaleChall)
}
