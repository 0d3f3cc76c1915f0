package readability

import (
	"fmt"
	"sort"
	"strings"
)

// ComplexSentence describes one sentence a formula ranks as hard.
type ComplexSentence struct {
	Index        int
	Text         string
	Length       int
	AvgSyllables float64
	Score        float64
	// DifficultWords is nil when word analysis is disabled.
	DifficultWords []string
	// Suggestions is nil when suggestions are disabled.
	Suggestions []string
	// FlaggedBy is only set in a StandardReport.
	FlaggedBy []Metric
}

// ImprovementSummary aggregates a report.
type ImprovementSummary struct {
	Sentences      int
	Flagged        int
	LongSentences  int
	DifficultWords int
	Suggestions    int
}

// VerboseReport is a score with the sentences that drive it.
type VerboseReport struct {
	Metric           Metric
	Score            float64
	ComplexSentences []ComplexSentence
	Summary          ImprovementSummary
}

type rankedSentence struct {
	index int
	text  string
	score float64
}

// Report scores text with metric and explains the result. Score is exactly
// what Score returns for the same options.
func (e *Engine) Report(m Metric, text string, opts ...CallOption) (VerboseReport, error) {
	score, err := e.Score(m, text, opts...)
	if err != nil {
		return VerboseReport{}, err
	}
	cs, _ := e.callSettings(opts)
	text = canonical(text)
	ranked, err := e.rank(m, text, cs)
	if err != nil {
		return VerboseReport{}, err
	}
	report := VerboseReport{Metric: m, Score: score}
	for _, r := range ranked {
		report.ComplexSentences = append(report.ComplexSentences, e.describe(r, cs))
	}
	report.Summary = e.summarize(text, report.ComplexSentences)
	return report, nil
}

// rank returns the top sentences of text ordered from hardest to easiest
// by the formula's own per-sentence score.
func (e *Engine) rank(m Metric, text string, cs callSettings) ([]rankedSentence, error) {
	var ranked []rankedSentence
	for i, s := range e.view(text).sentences() {
		d := e.direct(s)
		if d.wordCount() == 0 {
			continue
		}
		score, err := e.rawScore(m, d, cs.variant)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, rankedSentence{index: i, text: s, score: score})
	}
	easier := m.HigherIsEasier()
	sort.SliceStable(ranked, func(i, j int) bool {
		if easier {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > cs.topN {
		ranked = ranked[:cs.topN]
	}
	return ranked, nil
}

func (e *Engine) describe(r rankedSentence, cs callSettings) ComplexSentence {
	d := e.direct(r.text)
	c := ComplexSentence{
		Index:        r.index,
		Text:         r.text,
		Length:       d.wordCount(),
		AvgSyllables: d.asw(),
		Score:        cs.rounding.Apply(r.score),
	}
	hard := d.difficultWords(e.cfg.DifficultSyllables)
	if !cs.noWords {
		c.DifficultWords = append([]string{}, hard...)
	}
	if !cs.noSuggestions {
		c.Suggestions = e.suggest(d, hard)
	}
	return c
}

const (
	maxReplaceSuggestions = 3
	difficultRatioLimit   = 0.2
	minWordsForRatio      = 5
	maxCommas             = 3
)

// suggest proposes rule-based rewrites for one sentence.
func (e *Engine) suggest(d *view, hard []string) []string {
	out := []string{}
	words := d.wordCount()
	if limit := e.cfg.LongSentenceWords; words > limit {
		out = append(out, fmt.Sprintf("Split this sentence: it has %d words, aim for %d or fewer.", words, limit))
	}
	replaced := 0
	for _, w := range hard {
		if replaced == maxReplaceSuggestions {
			break
		}
		if n := e.est.Word(w); n >= e.cfg.PolysyllableSyllables {
			out = append(out, fmt.Sprintf("Replace %q (%d syllables) with a shorter word.", w, n))
			replaced++
		}
	}
	if words >= minWordsForRatio && ratio(len(hard), words) > difficultRatioLimit {
		out = append(out, fmt.Sprintf("Use more common words: %d of %d words are difficult.", len(hard), words))
	}
	if commas := strings.Count(d.text, ",") + strings.Count(d.text, "،") + strings.Count(d.text, "，"); commas >= maxCommas {
		out = append(out, fmt.Sprintf("Reduce the number of clauses: the sentence has %d commas.", commas))
	}
	return out
}

func (e *Engine) summarize(text string, flagged []ComplexSentence) ImprovementSummary {
	v := e.view(text)
	sentences := v.sentences()
	s := ImprovementSummary{
		Sentences:      len(sentences),
		Flagged:        len(flagged),
		DifficultWords: len(v.difficultWords(e.cfg.DifficultSyllables)),
	}
	for _, sentence := range sentences {
		if e.direct(sentence).wordCount() > e.cfg.LongSentenceWords {
			s.LongSentences++
		}
	}
	for _, c := range flagged {
		s.Suggestions += len(c.Suggestions)
	}
	return s
}
