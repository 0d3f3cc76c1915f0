package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/readgrade/readability"
)

// Score is one row of the scores table.
type Score struct {
	Metric readability.Metric
	Value  float64
}

// Scores collects every metric available for the engine's locale, in catalog
// order. Variant-dependent metrics use the call options given.
func Scores(e *readability.Engine, text string, opts ...readability.CallOption) ([]Score, error) {
	metrics := readability.MetricsFor(e.Lang())
	out := make([]Score, 0, len(metrics))
	for _, m := range metrics {
		v, err := e.Score(m, text, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", m, err)
		}
		out = append(out, Score{Metric: m, Value: v})
	}
	return out, nil
}

// WriteScores prints a metric/score table.
func WriteScores(w io.Writer, scores []Score) error {
	rows := make([][]string, len(scores))
	for i, s := range scores {
		direction := "lower is easier"
		if s.Metric.HigherIsEasier() {
			direction = "higher is easier"
		}
		rows[i] = []string{string(s.Metric), formatFloat(s.Value), direction}
	}
	return writeLines(w, FormatTable([]string{"Metric", "Score", ""}, rows, map[int]bool{1: true}))
}

// WriteStatistics prints the descriptive statistics of a text.
func WriteStatistics(w io.Writer, st readability.TextStatistics) error {
	rows := [][]string{
		{"Characters", fmt.Sprint(st.Characters)},
		{"Characters with spaces", fmt.Sprint(st.CharactersWithSpaces)},
		{"Letters", fmt.Sprint(st.Letters)},
		{"Words", fmt.Sprint(st.Words)},
		{"Sentences", fmt.Sprint(st.Sentences)},
		{"Syllables", fmt.Sprint(st.Syllables)},
		{"Polysyllables", fmt.Sprint(st.Polysyllables)},
		{"Monosyllables", fmt.Sprint(st.Monosyllables)},
		{"Long words", fmt.Sprint(st.LongWords)},
		{"Miniwords", fmt.Sprint(st.Miniwords)},
		{"Difficult words", fmt.Sprint(st.DifficultWords)},
		{"Avg sentence length", formatFloat(st.AvgSentenceLength)},
		{"Avg syllables per word", formatFloat(st.AvgSyllablesPerWord)},
		{"Avg characters per word", formatFloat(st.AvgCharactersPerWord)},
		{"Avg letters per word", formatFloat(st.AvgLettersPerWord)},
		{"Reading time (s)", formatFloat(st.ReadingTime)},
	}
	return writeLines(w, FormatTable(nil, rows, map[int]bool{1: true}))
}

// WriteVerbose prints a metric's score followed by its flagged sentences.
func WriteVerbose(w io.Writer, r readability.VerboseReport, width int) error {
	lines := []string{fmt.Sprintf("%s: %s", r.Metric, formatFloat(r.Score))}
	lines = append(lines, sentenceLines(r.ComplexSentences, width, false)...)
	lines = append(lines, summaryLine(r.Summary))
	return writeLines(w, lines)
}

// WriteStandard prints the consensus grade, optionally with its breakdown.
func WriteStandard(w io.Writer, r readability.StandardReport, width int, verbose bool) error {
	lines := []string{r.Grade}
	if verbose {
		lines = append(lines, "")
		var rows [][]string
		for _, m := range readability.Metrics() {
			if v, ok := r.IndividualScores[m]; ok {
				rows = append(rows, []string{string(m), formatFloat(v)})
			}
		}
		lines = append(lines, FormatTable([]string{"Metric", "Score"}, rows, map[int]bool{1: true})...)
		lines = append(lines, sentenceLines(r.ComplexSentences, width, true)...)
		lines = append(lines, summaryLine(r.Summary))
	}
	return writeLines(w, lines)
}

func sentenceLines(sentences []readability.ComplexSentence, width int, flagged bool) []string {
	const indent = "    "
	var lines []string
	for _, s := range sentences {
		lines = append(lines, "", fmt.Sprintf("#%d  score %s  %d words  %.2f syllables/word",
			s.Index+1, formatFloat(s.Score), s.Length, s.AvgSyllables))
		if flagged && len(s.FlaggedBy) > 0 {
			names := make([]string, len(s.FlaggedBy))
			for i, m := range s.FlaggedBy {
				names[i] = string(m)
			}
			lines = append(lines, indent+"flagged by: "+strings.Join(names, ", "))
		}
		for _, l := range Wrap(s.Text, width-len(indent)) {
			lines = append(lines, indent+l)
		}
		if len(s.DifficultWords) > 0 {
			lines = append(lines, indent+"difficult: "+strings.Join(s.DifficultWords, ", "))
		}
		for _, sug := range s.Suggestions {
			lines = append(lines, indent+"- "+sug)
		}
	}
	return lines
}

func summaryLine(s readability.ImprovementSummary) string {
	return fmt.Sprintf("\n%d of %d sentences flagged, %d long, %d difficult words, %d suggestions",
		s.Flagged, s.Sentences, s.LongSentences, s.DifficultWords, s.Suggestions)
}

func formatFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
