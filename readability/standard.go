package readability

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// panel lists the formulas that vote on the consensus grade.
var panel = []Metric{
	FleschKincaidGrade,
	FleschReadingEase,
	SmogIndex,
	ColemanLiauIndex,
	AutomatedReadabilityIndex,
	DaleChall,
	LinsearWriteFormula,
	GunningFog,
}

// smogMinSentences is the sentence count below which SMOG does not vote.
const smogMinSentences = 3

// votes collects the grade votes of the panel for a canonical text.
func (e *Engine) votes(text string) []int {
	v := e.view(text)
	var out []int
	numeric := func(score float64) {
		out = append(out, int(math.RoundToEven(score)), int(math.Ceil(score)))
	}
	for _, m := range panel {
		if !m.Supports(e.cfg.ID) {
			continue
		}
		if m == SmogIndex && v.sentenceCount() < smogMinSentences {
			continue
		}
		score := value(e.c.raw[m].Call(query{text: text}))
		switch m {
		case FleschReadingEase:
			out = append(out, e.cfg.ReadingEaseGrades(score)...)
		case DaleChall:
			out = append(out, e.cfg.DaleChallGrades(score)...)
		default:
			numeric(score)
		}
	}
	return out
}

// consensus returns the most frequent vote, preferring the lower grade on
// ties. It is zero for text without words and at least one otherwise.
func (e *Engine) consensus(text string) int {
	if e.view(text).wordCount() == 0 {
		return 0
	}
	counts := map[int]int{}
	for _, g := range e.votes(text) {
		counts[g]++
	}
	best, bestCount := 0, 0
	for g, n := range counts {
		if n > bestCount || (n == bestCount && g < best) {
			best, bestCount = g, n
		}
	}
	return max(best, 1)
}

// TextStandard returns the consensus grade as a range such as
// "2nd and 3rd grade". Text without words is "0th grade".
func (e *Engine) TextStandard(text string) string {
	return gradeRange(e.consensus(canonical(text)))
}

// TextStandardScore returns the consensus grade as a number.
func (e *Engine) TextStandardScore(text string) float64 {
	return float64(e.consensus(canonical(text)))
}

func gradeRange(g int) string {
	if g == 0 {
		return "0th grade"
	}
	return fmt.Sprintf("%s and %s grade", ordinal(g-1), ordinal(g))
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// StandardReport explains a consensus grade.
type StandardReport struct {
	Grade            string
	ConsensusScore   float64
	IndividualScores map[Metric]float64
	// ComplexSentences merges the hardest sentences of every panel formula.
	// Score holds the per-sentence score of the first formula in FlaggedBy.
	ComplexSentences []ComplexSentence
	Summary          ImprovementSummary
}

// TextStandardReport computes the consensus grade together with each panel
// score and the sentences the panel formulas rank hardest.
func (e *Engine) TextStandardReport(text string, opts ...CallOption) (StandardReport, error) {
	cs, err := e.callSettings(opts)
	if err != nil {
		return StandardReport{}, err
	}
	text = canonical(text)
	g := e.consensus(text)
	report := StandardReport{
		Grade:            gradeRange(g),
		ConsensusScore:   float64(g),
		IndividualScores: make(map[Metric]float64, len(panel)),
	}

	byIndex := map[int]*ComplexSentence{}
	for _, m := range panel {
		if !m.Supports(e.cfg.ID) {
			continue
		}
		score, err := e.Score(m, text, opts...)
		if err != nil {
			return StandardReport{}, err
		}
		report.IndividualScores[m] = score

		ranked, err := e.rank(m, text, cs)
		if err != nil {
			return StandardReport{}, err
		}
		for _, r := range ranked {
			if c, ok := byIndex[r.index]; ok {
				c.FlaggedBy = append(c.FlaggedBy, m)
				continue
			}
			c := e.describe(r, cs)
			c.FlaggedBy = []Metric{m}
			byIndex[r.index] = &c
		}
	}

	for _, c := range byIndex {
		report.ComplexSentences = append(report.ComplexSentences, *c)
	}
	sort.Slice(report.ComplexSentences, func(i, j int) bool {
		a, b := report.ComplexSentences[i], report.ComplexSentences[j]
		if len(a.FlaggedBy) != len(b.FlaggedBy) {
			return len(a.FlaggedBy) > len(b.FlaggedBy)
		}
		return a.Index < b.Index
	})
	report.Summary = e.summarize(text, report.ComplexSentences)
	return report, nil
}
