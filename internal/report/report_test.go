package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/readgrade/readability"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three", "four five"}, Wrap("one two three four five", 9))
	assert.Equal(t, []string{"a", "extraordinary", "b"}, Wrap("a extraordinary b", 5))
	assert.Equal(t, []string{"no limit here"}, Wrap("no  limit here", 0))
	for _, line := range Wrap("日本語の文章 とても 長い 文です", 8) {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 12)
	}
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 10))
	assert.Equal(t, "▁█", Sparkline([]float64{1, 5}, 10))
	assert.Equal(t, "▅▅▅", Sparkline([]float64{2, 2, 2}, 10))
	assert.Equal(t, 4, len([]rune(Sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 4))))
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, []float64{1, 1.5, 2.5, 3.5}, MovingAverage([]float64{1, 2, 3, 4}, 2))
	assert.Equal(t, []float64{3, 1}, MovingAverage([]float64{3, 1}, 1))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "-1", formatFloat(-1))
	assert.Equal(t, "100", formatFloat(100))
	assert.Equal(t, "83.32", formatFloat(83.32))
	assert.Equal(t, "8.8418", formatFloat(8.841846274778883))
}

func TestScoresAndRendering(t *testing.T) {
	e, err := readability.New()
	require.NoError(t, err)
	text := "Cool dogs wear da sunglasses. The cat sat on the mat."

	scores, err := Scores(e, text)
	require.NoError(t, err)
	require.Len(t, scores, len(readability.MetricsFor("en")))

	var buf bytes.Buffer
	require.NoError(t, WriteScores(&buf, scores))
	out := buf.String()
	assert.Contains(t, out, "flesch_reading_ease")
	assert.Contains(t, out, "higher is easier")
	assert.NotContains(t, out, "gulpease_index")

	buf.Reset()
	require.NoError(t, WriteStatistics(&buf, e.Statistics(text)))
	assert.Contains(t, buf.String(), "Sentences")

	rep, err := e.Report(readability.FleschKincaidGrade, text)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, WriteVerbose(&buf, rep, 40))
	assert.True(t, strings.HasPrefix(buf.String(), "flesch_kincaid_grade: "))
	assert.Contains(t, buf.String(), "of 2 sentences flagged")

	std, err := e.TextStandardReport(text)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, WriteStandard(&buf, std, 60, false))
	assert.Equal(t, std.Grade+"\n", buf.String())
	buf.Reset()
	require.NoError(t, WriteStandard(&buf, std, 60, true))
	assert.Contains(t, buf.String(), "flagged by:")
}

func TestTerminalWidthFallback(t *testing.T) {
	assert.Equal(t, 80, TerminalWidth(&bytes.Buffer{}))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
