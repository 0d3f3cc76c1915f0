// Package readability scores text with readability formulas across locales.
//
// An Engine owns its locale, rounding policy, syllable dictionary snapshot and
// statistic caches. Engines are independent of each other and are not safe
// for concurrent use; callers that need parallelism build one engine per
// goroutine. Default returns a process-wide engine for convenience.
package readability

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/difficulty"
	"github.com/verte-zerg/readgrade/internal/locale"
	"github.com/verte-zerg/readgrade/internal/memo"
	"github.com/verte-zerg/readgrade/internal/syllable"
	"github.com/verte-zerg/readgrade/internal/textseg"
)

// Engine computes statistics and formula scores for one configuration.
type Engine struct {
	registry     *locale.Registry
	store        dictstore.Store
	logger       zerolog.Logger
	cacheSize    int
	rounding     RoundingPolicy
	rmApostrophe bool
	easyWords    map[string]easyOverride

	base       *locale.Config
	cfg        *locale.Config
	dict       *syllable.Dictionary
	est        *syllable.Estimator
	classifier *difficulty.Classifier

	caches *memo.Registry
	c      statCaches
}

// query is the argument of every memoized function. Fields a function does
// not use stay zero so they do not split its keys.
type query struct {
	text  string
	n     int
	flag  bool
	round RoundingPolicy
}

type statCaches struct {
	sentences      *memo.Func[query, []string]
	words          *memo.Func[query, []string]
	charCount      *memo.Func[query, int]
	letterCount    *memo.Func[query, int]
	lexiconCount   *memo.Func[query, int]
	syllableCount  *memo.Func[query, int]
	sentenceCount  *memo.Func[query, int]
	polysyllables  *memo.Func[query, int]
	monosyllables  *memo.Func[query, int]
	longWords      *memo.Func[query, int]
	miniwords      *memo.Func[query, int]
	difficultWords *memo.Func[query, []string]
	daleChallCount *memo.Func[query, int]
	avgSentenceLen *memo.Func[query, float64]
	avgSyllables   *memo.Func[query, float64]
	raw            map[Metric]*memo.Func[query, float64]
	presented      map[Metric]*memo.Func[query, float64]
}

// New builds an engine. The locale defaults to English and rounding is off.
func New(opts ...EngineOption) (*Engine, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.err != nil {
		return nil, s.err
	}
	if err := s.rounding.Validate(); err != nil {
		return nil, err
	}
	if s.registry == nil {
		reg, err := locale.DefaultRegistry()
		if err != nil {
			return nil, fmt.Errorf("failed to load locales: %w", err)
		}
		s.registry = reg
	}

	e := &Engine{
		registry:     s.registry,
		store:        s.store,
		logger:       s.logger,
		cacheSize:    s.cacheSize,
		rounding:     s.rounding,
		rmApostrophe: s.rmApostrophe,
		easyWords:    s.easyWords,
	}
	if err := e.buildCaches(); err != nil {
		return nil, err
	}
	if err := e.SetLang(s.lang); err != nil {
		return nil, err
	}
	return e, nil
}

// SetLang switches the active locale and clears every cache. The user
// dictionary for the new locale is loaded from the attached store; a missing
// or broken one is logged and replaced by an empty layer. On error the engine
// keeps its previous locale.
func (e *Engine) SetLang(id string) error {
	cfg, err := e.registry.Lookup(id)
	if err != nil {
		return err
	}
	if err := e.install(cfg, e.implicitUserLayer(cfg.ID)); err != nil {
		return err
	}
	e.logger.Debug().Str("locale", cfg.ID).Str("requested", id).Msg("locale switched")
	return nil
}

// SetRounding changes the engine-wide rounding policy. Cached raw values stay
// valid because presented scores are keyed by the policy.
func (e *Engine) SetRounding(enabled bool, precision int) error {
	p := RoundingPolicy{Enabled: enabled, Precision: precision}
	if err := p.Validate(); err != nil {
		return err
	}
	e.rounding = p
	return nil
}

// SetRmApostrophe toggles apostrophe removal and clears every cache.
func (e *Engine) SetRmApostrophe(rm bool) {
	if e.rmApostrophe == rm {
		return
	}
	e.rmApostrophe = rm
	e.ClearCaches()
}

// SetEasyWords replaces the easy-word list of the active locale. A nil slice
// restores the packaged list.
func (e *Engine) SetEasyWords(words []string) {
	if words == nil {
		delete(e.easyWords, e.base.ID)
	} else {
		e.easyWords[e.base.ID] = easyOverride{source: "custom", words: append([]string(nil), words...)}
	}
	// The dictionary was already validated, so install cannot fail here.
	_ = e.install(e.base, e.dict.User())
}

// install activates a locale with the given user dictionary layer.
func (e *Engine) install(base *locale.Config, user map[string]int) error {
	cfg := base
	if o, ok := e.easyWords[base.ID]; ok {
		cfg = base.WithEasyWords(o.source, o.words)
	}
	dict, err := syllable.NewDictionary(cfg.DefaultDictionary(), user)
	if err != nil {
		return err
	}
	e.base = base
	e.cfg = cfg
	e.dict = dict
	e.est = syllable.NewEstimator(cfg, dict)
	e.classifier = difficulty.New(cfg, e.est)
	e.ClearCaches()
	e.logger.Debug().
		Str("locale", cfg.ID).
		Int("user_terms", len(user)).
		Int("dictionary_terms", dict.Len()).
		Str("easy_words", cfg.EasyWordSource()).
		Msg("dictionary snapshot installed")
	return nil
}

// Lang returns the active locale id.
func (e *Engine) Lang() string { return e.cfg.ID }

// Locale returns the active locale configuration.
func (e *Engine) Locale() *locale.Config { return e.cfg }

// Locales lists every locale id the engine can switch to.
func (e *Engine) Locales() []string { return e.registry.IDs() }

// Rounding returns the engine-wide rounding policy.
func (e *Engine) Rounding() RoundingPolicy { return e.rounding }

// RmApostrophe reports whether apostrophes are removed from words.
func (e *Engine) RmApostrophe() bool { return e.rmApostrophe }

// Logger returns the engine logger.
func (e *Engine) Logger() zerolog.Logger { return e.logger }

func (e *Engine) keepApostrophes() bool { return !e.rmApostrophe }

// maxInlineKey is the longest text stored verbatim in a cache key. Longer
// texts are keyed by their BLAKE2b digest.
const maxInlineKey = 64

func (e *Engine) key(q query) string {
	text := q.text
	if len(text) > maxInlineKey {
		sum := blake2b.Sum256([]byte(text))
		text = "#" + hex.EncodeToString(sum[:])
	}
	return fmt.Sprintf("%s|%t|%d|%t|%t|%d|%s",
		e.cfg.ID, e.rmApostrophe, q.n, q.flag, q.round.Enabled, q.round.Precision, text)
}

// canonical normalizes text to NFC so composed and decomposed input share
// cache entries and counts.
func canonical(text string) string {
	return norm.NFC.String(text)
}

func register[V any](e *Engine, errp *error, name string, compute func(query) (V, error)) *memo.Func[query, V] {
	if *errp != nil {
		return nil
	}
	f, err := memo.Register(e.caches, name, e.cacheSize, e.key, compute)
	*errp = err
	return f
}

func pure[V any](compute func(query) V) func(query) (V, error) {
	return func(q query) (V, error) { return compute(q), nil }
}

func (e *Engine) buildCaches() error {
	e.caches = memo.NewRegistry()
	var err error
	c := &e.c
	c.sentences = register(e, &err, "sentences", pure(func(q query) []string {
		return textseg.Sentences(q.text, e.cfg)
	}))
	c.words = register(e, &err, "words", pure(func(q query) []string {
		return textseg.Words(q.text, e.keepApostrophes(), e.cfg)
	}))
	c.charCount = register(e, &err, "char_count", pure(func(q query) int {
		return textseg.CharCount(q.text, q.flag)
	}))
	c.letterCount = register(e, &err, "letter_count", pure(func(q query) int {
		return textseg.LetterCount(q.text, q.flag)
	}))
	c.lexiconCount = register(e, &err, "lexicon_count", pure(func(q query) int {
		if q.flag {
			return len(e.view(q.text).words())
		}
		return textseg.LexiconCount(q.text, false, e.keepApostrophes(), e.cfg)
	}))
	c.syllableCount = register(e, &err, "syllable_count", pure(func(q query) int {
		return e.direct(q.text).syllables()
	}))
	c.sentenceCount = register(e, &err, "sentence_count", pure(func(q query) int {
		return len(e.view(q.text).sentences())
	}))
	c.polysyllables = register(e, &err, "polysyllable_count", pure(func(q query) int {
		return e.direct(q.text).polysyllables()
	}))
	c.monosyllables = register(e, &err, "monosyllable_count", pure(func(q query) int {
		return e.direct(q.text).monosyllables()
	}))
	c.longWords = register(e, &err, "long_word_count", pure(func(q query) int {
		return e.direct(q.text).longWords()
	}))
	c.miniwords = register(e, &err, "miniword_count", pure(func(q query) int {
		return textseg.MiniwordCount(e.view(q.text).words(), q.n)
	}))
	c.difficultWords = register(e, &err, "difficult_words_list", pure(func(q query) []string {
		return e.classifier.DifficultWords(e.view(q.text).sentences(), q.n, e.keepApostrophes())
	}))
	c.daleChallCount = register(e, &err, "dale_chall_count", pure(func(q query) int {
		return e.classifier.DaleChallCount(e.view(q.text).sentences(), e.keepApostrophes())
	}))
	c.avgSentenceLen = register(e, &err, "avg_sentence_length", pure(func(q query) float64 {
		v := e.view(q.text)
		return ratio(v.wordCount(), v.sentenceCount())
	}))
	c.avgSyllables = register(e, &err, "avg_syllables_per_word", pure(func(q query) float64 {
		v := e.view(q.text)
		return ratio(v.syllables(), v.wordCount())
	}))

	c.raw = make(map[Metric]*memo.Func[query, float64], len(metricOrder))
	c.presented = make(map[Metric]*memo.Func[query, float64], len(metricOrder))
	for _, m := range metricOrder {
		m := m // per-iteration copy: go.mod targets go 1.21 loop-variable semantics
		c.raw[m] = register(e, &err, string(m)+".raw", func(q query) (float64, error) {
			return e.rawScore(m, e.view(q.text), q.n)
		})
		c.presented[m] = register(e, &err, string(m), func(q query) (float64, error) {
			raw, rawErr := c.raw[m].Call(query{text: q.text, n: q.n})
			if rawErr != nil {
				return 0, rawErr
			}
			if q.flag {
				raw = float64(int64(raw))
			}
			return q.round.Apply(raw), nil
		})
	}
	if err != nil {
		return fmt.Errorf("failed to build caches: %w", err)
	}
	return nil
}

// CacheNames lists the memoized functions in registration order.
func (e *Engine) CacheNames() []string {
	return e.caches.Names()
}

// CacheInfo returns hit and miss counters for one memoized function.
func (e *Engine) CacheInfo(name string) (memo.Stats, error) {
	c, err := e.caches.Lookup(name)
	if err != nil {
		return memo.Stats{}, err
	}
	return c.Stats(), nil
}

// ClearCache empties one memoized function.
func (e *Engine) ClearCache(name string) error {
	c, err := e.caches.Lookup(name)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// ClearCaches empties every memoized function.
func (e *Engine) ClearCaches() {
	e.caches.ClearAll()
	e.logger.Debug().Msg("caches cleared")
}
