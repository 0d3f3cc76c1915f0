package readability

import (
	"github.com/verte-zerg/readgrade/internal/textseg"
)

// view exposes the counts formulas read for one text. A cached view goes
// through the engine caches; a direct view computes everything itself and is
// used for the single sentences of verbose reports.
type view struct {
	e      *Engine
	text   string
	cached bool

	sentenceList []string
	wordList     []string
	split        bool
	tokenized    bool
}

func (e *Engine) view(text string) *view {
	return &view{e: e, text: text, cached: true}
}

func (e *Engine) direct(text string) *view {
	return &view{e: e, text: text}
}

func value[V any](v V, _ error) V {
	return v
}

func (v *view) q() query {
	return query{text: v.text}
}

func (v *view) sentences() []string {
	if v.cached {
		return value(v.e.c.sentences.Call(v.q()))
	}
	if !v.split {
		v.sentenceList = textseg.Sentences(v.text, v.e.cfg)
		v.split = true
	}
	return v.sentenceList
}

func (v *view) sentenceCount() int {
	if v.cached {
		return value(v.e.c.sentenceCount.Call(v.q()))
	}
	return len(v.sentences())
}

func (v *view) words() []string {
	if v.cached {
		return value(v.e.c.words.Call(v.q()))
	}
	if !v.tokenized {
		v.wordList = textseg.Words(v.text, v.e.keepApostrophes(), v.e.cfg)
		v.tokenized = true
	}
	return v.wordList
}

func (v *view) wordCount() int {
	if v.cached {
		return value(v.e.c.lexiconCount.Call(query{text: v.text, flag: true}))
	}
	return len(v.words())
}

func (v *view) syllables() int {
	if v.cached {
		return value(v.e.c.syllableCount.Call(v.q()))
	}
	return v.e.est.Count(v.words())
}

func (v *view) chars() int {
	if v.cached {
		return value(v.e.c.charCount.Call(query{text: v.text, flag: true}))
	}
	return textseg.CharCount(v.text, true)
}

func (v *view) letters() int {
	if v.cached {
		return value(v.e.c.letterCount.Call(query{text: v.text, flag: true}))
	}
	return textseg.LetterCount(v.text, true)
}

func (v *view) countSyllables(keep func(n int) bool) int {
	count := 0
	for _, w := range v.words() {
		if keep(v.e.est.Word(w)) {
			count++
		}
	}
	return count
}

func (v *view) polysyllables() int {
	if v.cached {
		return value(v.e.c.polysyllables.Call(v.q()))
	}
	threshold := v.e.cfg.PolysyllableSyllables
	return v.countSyllables(func(n int) bool { return n >= threshold })
}

func (v *view) monosyllables() int {
	if v.cached {
		return value(v.e.c.monosyllables.Call(v.q()))
	}
	return v.countSyllables(func(n int) bool { return n == 1 })
}

func (v *view) longWords() int {
	if v.cached {
		return value(v.e.c.longWords.Call(v.q()))
	}
	return textseg.LongWordCount(v.words(), v.e.cfg.LongWordLetters)
}

func (v *view) miniwords() int {
	if v.cached {
		return value(v.e.c.miniwords.Call(query{text: v.text, n: v.e.cfg.MiniWordLetters}))
	}
	return textseg.MiniwordCount(v.words(), v.e.cfg.MiniWordLetters)
}

func (v *view) difficultWords(threshold int) []string {
	if v.cached {
		return value(v.e.c.difficultWords.Call(query{text: v.text, n: threshold}))
	}
	return v.e.classifier.DifficultWords(v.sentences(), threshold, v.e.keepApostrophes())
}

func (v *view) daleChallCount() int {
	if v.cached {
		return value(v.e.c.daleChallCount.Call(v.q()))
	}
	return v.e.classifier.DaleChallCount(v.sentences(), v.e.keepApostrophes())
}

// asl is the average sentence length in words.
func (v *view) asl() float64 {
	if v.cached {
		return value(v.e.c.avgSentenceLen.Call(v.q()))
	}
	return ratio(v.wordCount(), v.sentenceCount())
}

// asw is the average number of syllables per word.
func (v *view) asw() float64 {
	if v.cached {
		return value(v.e.c.avgSyllables.Call(v.q()))
	}
	return ratio(v.syllables(), v.wordCount())
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// TextStatistics collects the counts and averages of a text.
type TextStatistics struct {
	Characters           int
	CharactersWithSpaces int
	Letters              int
	Words                int
	Sentences            int
	Syllables            int
	Polysyllables        int
	Monosyllables        int
	LongWords            int
	Miniwords            int
	DifficultWords       int
	AvgSentenceLength    float64
	AvgSyllablesPerWord  float64
	AvgCharactersPerWord float64
	AvgLettersPerWord    float64
	ReadingTime          float64
}

// Statistics computes every count of text in one call.
func (e *Engine) Statistics(text string) TextStatistics {
	text = canonical(text)
	v := e.view(text)
	return TextStatistics{
		Characters:           v.chars(),
		CharactersWithSpaces: e.CharCount(text, false),
		Letters:              v.letters(),
		Words:                v.wordCount(),
		Sentences:            v.sentenceCount(),
		Syllables:            v.syllables(),
		Polysyllables:        v.polysyllables(),
		Monosyllables:        v.monosyllables(),
		LongWords:            v.longWords(),
		Miniwords:            v.miniwords(),
		DifficultWords:       len(v.difficultWords(e.cfg.DifficultSyllables)),
		AvgSentenceLength:    v.asl(),
		AvgSyllablesPerWord:  v.asw(),
		AvgCharactersPerWord: ratio(v.chars(), v.wordCount()),
		AvgLettersPerWord:    ratio(v.letters(), v.wordCount()),
		ReadingTime:          e.readingTime(v),
	}
}

// CharCount counts characters, skipping whitespace when ignoreSpaces is set.
func (e *Engine) CharCount(text string, ignoreSpaces bool) int {
	return value(e.c.charCount.Call(query{text: canonical(text), flag: ignoreSpaces}))
}

// LetterCount counts letters, counting whitespace too when ignoreSpaces is false.
func (e *Engine) LetterCount(text string, ignoreSpaces bool) int {
	return value(e.c.letterCount.Call(query{text: canonical(text), flag: ignoreSpaces}))
}

// RemovePunctuation strips punctuation, keeping in-word apostrophes unless
// apostrophe removal is on.
func (e *Engine) RemovePunctuation(text string) string {
	return textseg.RemovePunctuation(canonical(text), e.keepApostrophes(), e.cfg)
}

// LexiconCount counts words. Without removePunct, standalone punctuation
// tokens count as words.
func (e *Engine) LexiconCount(text string, removePunct bool) int {
	return value(e.c.lexiconCount.Call(query{text: canonical(text), flag: removePunct}))
}

// Words returns the words of text after punctuation removal.
func (e *Engine) Words(text string) []string {
	return append([]string(nil), e.view(canonical(text)).words()...)
}

// SyllableCount sums the syllables of every word.
func (e *Engine) SyllableCount(text string) int {
	return e.view(canonical(text)).syllables()
}

// WordSyllables returns the syllable count of one word and the dictionary
// layer that produced it: "user", "default" or "heuristic".
func (e *Engine) WordSyllables(word string) (int, string) {
	n, src := e.est.Explain(canonical(word))
	return n, src.String()
}

// SentenceCount counts sentences. Text with at least one word has at least one sentence.
func (e *Engine) SentenceCount(text string) int {
	return e.view(canonical(text)).sentenceCount()
}

// Sentences splits text into sentences.
func (e *Engine) Sentences(text string) []string {
	return append([]string(nil), e.view(canonical(text)).sentences()...)
}

// AvgSentenceLength is words per sentence.
func (e *Engine) AvgSentenceLength(text string) float64 {
	return e.view(canonical(text)).asl()
}

// WordsPerSentence is the same ratio as AvgSentenceLength.
func (e *Engine) WordsPerSentence(text string) float64 {
	return e.AvgSentenceLength(text)
}

// AvgSyllablesPerWord is syllables per word.
func (e *Engine) AvgSyllablesPerWord(text string) float64 {
	return e.view(canonical(text)).asw()
}

// AvgCharacterPerWord is non-space characters per word.
func (e *Engine) AvgCharacterPerWord(text string) float64 {
	v := e.view(canonical(text))
	return ratio(v.chars(), v.wordCount())
}

// AvgLetterPerWord is letters per word.
func (e *Engine) AvgLetterPerWord(text string) float64 {
	v := e.view(canonical(text))
	return ratio(v.letters(), v.wordCount())
}

// AvgSentencePerWord is sentences per word.
func (e *Engine) AvgSentencePerWord(text string) float64 {
	v := e.view(canonical(text))
	return ratio(v.sentenceCount(), v.wordCount())
}

// PolysyllableCount counts words with at least the locale's polysyllable threshold.
func (e *Engine) PolysyllableCount(text string) int {
	return e.view(canonical(text)).polysyllables()
}

// MonosyllableCount counts one-syllable words.
func (e *Engine) MonosyllableCount(text string) int {
	return e.view(canonical(text)).monosyllables()
}

// LongWordCount counts words longer than the locale's long-word length.
func (e *Engine) LongWordCount(text string) int {
	return e.view(canonical(text)).longWords()
}

// MiniwordCount counts words of at most maxSize characters. A maxSize below
// one uses the locale default.
func (e *Engine) MiniwordCount(text string, maxSize int) int {
	if maxSize < 1 {
		maxSize = e.cfg.MiniWordLetters
	}
	return value(e.c.miniwords.Call(query{text: canonical(text), n: maxSize}))
}

// DifficultWords counts distinct difficult words. A threshold below one uses
// the locale's syllable threshold.
func (e *Engine) DifficultWords(text string, threshold int) int {
	return len(e.difficultWords(canonical(text), threshold))
}

// DifficultWordsList returns the distinct difficult words in order of first
// appearance.
func (e *Engine) DifficultWordsList(text string, threshold int) []string {
	return append([]string(nil), e.difficultWords(canonical(text), threshold)...)
}

func (e *Engine) difficultWords(text string, threshold int) []string {
	if threshold < 1 {
		threshold = e.cfg.DifficultSyllables
	}
	return e.view(text).difficultWords(threshold)
}

// IsEasyWord reports whether word, or one of its inflection stems, is on the
// locale's easy-word list.
func (e *Engine) IsEasyWord(word string) bool {
	return e.classifier.IsEasy(canonical(word))
}

// IsDifficultWord reports whether word is off the easy list and reaches the
// locale's syllable threshold.
func (e *Engine) IsDifficultWord(word string) bool {
	return e.classifier.IsDifficult(canonical(word), e.cfg.DifficultSyllables)
}

// ReadingTime estimates reading time in seconds at the locale's words per minute.
func (e *Engine) ReadingTime(text string) float64 {
	return e.readingTime(e.view(canonical(text)))
}

func (e *Engine) readingTime(v *view) float64 {
	return float64(v.wordCount()) / e.cfg.ReadingWPM * 60
}
