package readability

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/readgrade/internal/errs"
	"github.com/verte-zerg/readgrade/internal/textseg"
)

const (
	linsearSample = 100
	forcastSample = 150
	wienerMaxVar  = 4
)

// Score computes metric for text. Locale-restricted metrics fail with a
// FormulaLocaleError under other locales. Text without words yields the
// metric's empty value, never an error.
func (e *Engine) Score(m Metric, text string, opts ...CallOption) (float64, error) {
	if _, ok := formulas[m]; !ok {
		return 0, &errs.NotFoundError{Resource: "metric", ID: string(m), Err: errs.ErrUnknownMetric}
	}
	if !m.Supports(e.cfg.ID) {
		return 0, &errs.FormulaLocaleError{Metric: string(m), Locale: e.cfg.ID, Supported: m.Locales()}
	}
	cs, err := e.callSettings(opts)
	if err != nil {
		return 0, err
	}
	variant := 0
	if m == WienerSachtextformel {
		if cs.variant < 1 || cs.variant > wienerMaxVar {
			return 0, errs.Invalid("variant", strconv.Itoa(cs.variant), "variant must be between 1 and 4", errs.ErrInvalidOption)
		}
		variant = cs.variant
	}
	return e.c.presented[m].Call(query{
		text:  canonical(text),
		n:     variant,
		flag:  cs.integerOutput,
		round: cs.rounding,
	})
}

// universal scores a metric that every locale supports. A rejected call
// option is logged and the call falls back to the engine defaults.
func (e *Engine) universal(m Metric, text string, opts []CallOption) float64 {
	v, err := e.Score(m, text, opts...)
	if err != nil {
		e.logger.Warn().Err(err).Str("metric", string(m)).Msg("ignoring call options")
		v, _ = e.Score(m, text)
	}
	return v
}

// rawScore evaluates a formula without presentation.
func (e *Engine) rawScore(m Metric, v *view, variant int) (float64, error) {
	f := formulas[m]
	if v.wordCount() == 0 {
		return f.empty, nil
	}
	return f.compute(v, variant)
}

// SentenceScores returns the raw per-sentence scores of metric, in sentence order.
func (e *Engine) SentenceScores(m Metric, text string, opts ...CallOption) ([]float64, error) {
	if _, err := e.Score(m, text, opts...); err != nil {
		return nil, err
	}
	cs, _ := e.callSettings(opts)
	sentences := e.view(canonical(text)).sentences()
	out := make([]float64, len(sentences))
	for i, s := range sentences {
		score, err := e.rawScore(m, e.direct(s), cs.variant)
		if err != nil {
			return nil, err
		}
		out[i] = score
	}
	return out, nil
}

func fleschReadingEase(v *view, _ int) (float64, error) {
	cfg := v.e.cfg
	return cfg.FleschBase - cfg.FleschSentence*v.asl() - cfg.FleschSyllable*v.asw(), nil
}

func fleschKincaidGrade(v *view, _ int) (float64, error) {
	return 0.39*v.asl() + 11.8*v.asw() - 15.59, nil
}

func smogIndex(v *view, _ int) (float64, error) {
	return 1.043*math.Sqrt(30*ratio(v.polysyllables(), v.sentenceCount())) + 3.1291, nil
}

func colemanLiauIndex(v *view, _ int) (float64, error) {
	letters := 100 * ratio(v.letters(), v.wordCount())
	sentences := 100 * ratio(v.sentenceCount(), v.wordCount())
	return 0.0588*letters - 0.296*sentences - 15.8, nil
}

func automatedReadabilityIndex(v *view, _ int) (float64, error) {
	return 4.71*ratio(v.chars(), v.wordCount()) + 0.5*v.asl() - 21.43, nil
}

// linsearWriteFormula scores the first hundred whitespace tokens.
func linsearWriteFormula(v *view, _ int) (float64, error) {
	tokens := strings.Fields(v.text)
	if len(tokens) > linsearSample {
		tokens = tokens[:linsearSample]
	}
	cfg := v.e.cfg
	easy, hard := 0, 0
	for _, tok := range tokens {
		if v.e.est.Count(textseg.Words(tok, v.e.keepApostrophes(), cfg)) < 3 {
			easy++
		} else {
			hard++
		}
	}
	sentences := max(textseg.SentenceCount(strings.Join(tokens, " "), cfg), 1)
	n := float64(easy+3*hard) / float64(sentences)
	if n <= 20 {
		n -= 2
	}
	return n / 2, nil
}

func daleChall(v *view, _ int) (float64, error) {
	pdw := 100 * ratio(v.daleChallCount(), v.wordCount())
	score := 0.1579*pdw + 0.0496*v.asl()
	if pdw > 5 {
		score += 3.6365
	}
	return score, nil
}

func daleChallV2(v *view, _ int) (float64, error) {
	pdw := 100 * ratio(len(v.difficultWords(v.e.cfg.DifficultSyllables)), v.wordCount())
	score := 0.1579*pdw + 0.0496*v.asl()
	if score > 0.05 {
		score += 3.6365
	}
	return score, nil
}

func gunningFog(v *view, _ int) (float64, error) {
	hard := 100 * ratio(len(v.difficultWords(3)), v.wordCount())
	return 0.4 * (v.asl() + hard), nil
}

func lix(v *view, _ int) (float64, error) {
	return v.asl() + 100*ratio(v.longWords(), v.wordCount()), nil
}

func rix(v *view, _ int) (float64, error) {
	return ratio(v.longWords(), v.sentenceCount()), nil
}

func mcalpineEFLAW(v *view, _ int) (float64, error) {
	return ratio(v.wordCount()+v.miniwords(), v.sentenceCount()), nil
}

func spache(v *view, _ int) (float64, error) {
	pdw := 100 * ratio(len(v.difficultWords(v.e.cfg.DifficultSyllables)), v.wordCount())
	return 0.141*v.asl() + 0.086*pdw + 0.839, nil
}

// forcast scales the monosyllable count to a 150-word sample.
func forcast(v *view, _ int) (float64, error) {
	words := v.words()
	if len(words) > forcastSample {
		words = words[:forcastSample]
	}
	mono := 0
	for _, w := range words {
		if v.e.est.Word(w) == 1 {
			mono++
		}
	}
	n := float64(mono) * forcastSample / float64(len(words))
	return 20 - n/10, nil
}

func fernandezHuerta(v *view, _ int) (float64, error) {
	return 206.84 - 60*v.asw() - 1.02*v.asl(), nil
}

func szigrisztPazos(v *view, _ int) (float64, error) {
	return 206.835 - 62.3*v.asw() - v.asl(), nil
}

func gutierrezPolini(v *view, _ int) (float64, error) {
	return 95.2 - 9.7*ratio(v.letters(), v.wordCount()) - 0.35*v.asl(), nil
}

func crawford(v *view, _ int) (float64, error) {
	sentences := 100 * ratio(v.sentenceCount(), v.wordCount())
	syllables := 100 * v.asw()
	return -0.205*sentences + 0.049*syllables - 3.407, nil
}

func wienerSachtextformel(v *view, variant int) (float64, error) {
	ms := 100 * ratio(v.polysyllables(), v.wordCount())
	sl := v.asl()
	iw := 100 * ratio(v.longWords(), v.wordCount())
	es := 100 * ratio(v.monosyllables(), v.wordCount())
	switch variant {
	case 1:
		return 0.1935*ms + 0.1672*sl + 0.1297*iw - 0.0327*es - 0.875, nil
	case 2:
		return 0.2007*ms + 0.1682*sl + 0.1373*iw - 2.779, nil
	case 3:
		return 0.2963*ms + 0.1905*sl - 1.1144, nil
	case 4:
		return 0.2744*ms + 0.2656*sl - 1.693, nil
	default:
		return 0, errs.Invalid("variant", strconv.Itoa(variant), "variant must be between 1 and 4", errs.ErrInvalidOption)
	}
}

func gulpeaseIndex(v *view, _ int) (float64, error) {
	return 89 + float64(300*v.sentenceCount()-10*v.chars())/float64(v.wordCount()), nil
}

const (
	osmanComplexSyllables = 5
	osmanLongLetters      = 5
	faseehLetters         = "ءئؤذظ"
)

// osman combines sentence length with the rates of complex, long and
// faseeh words. Faseeh words are complex words carrying one of the rarer
// hamza or emphatic letters, or ending in وا or ون.
func osman(v *view, _ int) (float64, error) {
	words := v.words()
	complexWords, long, faseeh := 0, 0, 0
	for _, w := range words {
		n := v.e.est.Word(w)
		if n > osmanComplexSyllables {
			complexWords++
			if strings.ContainsAny(w, faseehLetters) || strings.HasSuffix(w, "وا") || strings.HasSuffix(w, "ون") {
				faseeh++
			}
		}
		if utf8.RuneCountInString(w) > osmanLongLetters {
			long++
		}
	}
	total := len(words)
	rates := ratio(complexWords, total) + v.asw() + ratio(faseeh, total) + ratio(long, total)
	return 200.791 - 1.015*v.asl() - 24.181*rates, nil
}

// FleschReadingEase scores ease with the locale's constants. Higher is easier.
func (e *Engine) FleschReadingEase(text string, opts ...CallOption) float64 {
	return e.universal(FleschReadingEase, text, opts)
}

// FleschKincaidGrade returns a US school grade.
func (e *Engine) FleschKincaidGrade(text string, opts ...CallOption) float64 {
	return e.universal(FleschKincaidGrade, text, opts)
}

// SmogIndex returns the SMOG grade.
func (e *Engine) SmogIndex(text string, opts ...CallOption) float64 {
	return e.universal(SmogIndex, text, opts)
}

func (e *Engine) ColemanLiauIndex(text string, opts ...CallOption) float64 {
	return e.universal(ColemanLiauIndex, text, opts)
}

func (e *Engine) AutomatedReadabilityIndex(text string, opts ...CallOption) float64 {
	return e.universal(AutomatedReadabilityIndex, text, opts)
}

// LinsearWriteFormula returns -1 for text without words.
func (e *Engine) LinsearWriteFormula(text string, opts ...CallOption) float64 {
	return e.universal(LinsearWriteFormula, text, opts)
}

func (e *Engine) GunningFog(text string, opts ...CallOption) float64 {
	return e.universal(GunningFog, text, opts)
}

func (e *Engine) Lix(text string, opts ...CallOption) float64 {
	return e.universal(Lix, text, opts)
}

func (e *Engine) Rix(text string, opts ...CallOption) float64 {
	return e.universal(Rix, text, opts)
}

func (e *Engine) McAlpineEFLAW(text string, opts ...CallOption) float64 {
	return e.universal(McAlpineEFLAW, text, opts)
}

func (e *Engine) Forcast(text string, opts ...CallOption) float64 {
	return e.universal(Forcast, text, opts)
}

// DaleChallReadabilityScore counts every word token off the easy list.
func (e *Engine) DaleChallReadabilityScore(text string, opts ...CallOption) (float64, error) {
	return e.Score(DaleChall, text, opts...)
}

// DaleChallReadabilityScoreV2 counts distinct difficult words.
func (e *Engine) DaleChallReadabilityScoreV2(text string, opts ...CallOption) (float64, error) {
	return e.Score(DaleChallV2, text, opts...)
}

func (e *Engine) SpacheReadability(text string, opts ...CallOption) (float64, error) {
	return e.Score(SpacheReadability, text, opts...)
}

func (e *Engine) FernandezHuerta(text string, opts ...CallOption) (float64, error) {
	return e.Score(FernandezHuerta, text, opts...)
}

func (e *Engine) SzigrisztPazos(text string, opts ...CallOption) (float64, error) {
	return e.Score(SzigrisztPazos, text, opts...)
}

func (e *Engine) GutierrezPolini(text string, opts ...CallOption) (float64, error) {
	return e.Score(GutierrezPolini, text, opts...)
}

func (e *Engine) Crawford(text string, opts ...CallOption) (float64, error) {
	return e.Score(Crawford, text, opts...)
}

// WienerSachtextformel accepts WithVariant(1..4); the default is 1.
func (e *Engine) WienerSachtextformel(text string, opts ...CallOption) (float64, error) {
	return e.Score(WienerSachtextformel, text, opts...)
}

func (e *Engine) GulpeaseIndex(text string, opts ...CallOption) (float64, error) {
	return e.Score(GulpeaseIndex, text, opts...)
}

func (e *Engine) Osman(text string, opts ...CallOption) (float64, error) {
	return e.Score(Osman, text, opts...)
}
