package readability

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/errs"
	"github.com/verte-zerg/readgrade/internal/locale"
	"github.com/verte-zerg/readgrade/internal/memo"
)

// DefaultPrecision is the number of decimals used when rounding is enabled
// without an explicit precision.
const DefaultPrecision = 2

// DefaultTopN is the number of sentences a verbose report keeps.
const DefaultTopN = 5

// RoundingPolicy controls how final formula outputs are presented.
// It never affects counts, averages or cached raw values.
type RoundingPolicy struct {
	Enabled   bool
	Precision int
}

// Validate rejects negative precisions.
func (p RoundingPolicy) Validate() error {
	if p.Precision < 0 {
		return errs.Invalid("precision", strconv.Itoa(p.Precision), "precision must be zero or greater", errs.ErrInvalidPrecision)
	}
	return nil
}

// Apply rounds v half away from zero when the policy is enabled.
func (p RoundingPolicy) Apply(v float64) float64 {
	if !p.Enabled {
		return v
	}
	scale := math.Pow(10, float64(p.Precision))
	return math.Round(v*scale) / scale
}

type settings struct {
	lang         string
	rounding     RoundingPolicy
	rmApostrophe bool
	cacheSize    int
	logger       zerolog.Logger
	registry     *locale.Registry
	store        dictstore.Store
	easyWords    map[string]easyOverride
	err          error
}

type easyOverride struct {
	source string
	words  []string
}

func defaultSettings() settings {
	return settings{
		lang:      locale.DefaultID,
		rounding:  RoundingPolicy{Precision: DefaultPrecision},
		cacheSize: memo.DefaultCapacity,
		logger:    zerolog.Nop(),
		easyWords: map[string]easyOverride{},
	}
}

// EngineOption configures an Engine at construction.
type EngineOption func(*settings)

// WithLang selects the initial locale.
func WithLang(id string) EngineOption {
	return func(s *settings) { s.lang = id }
}

// WithRoundingPolicy sets the engine-wide rounding of formula outputs.
func WithRoundingPolicy(enabled bool, precision int) EngineOption {
	return func(s *settings) { s.rounding = RoundingPolicy{Enabled: enabled, Precision: precision} }
}

// WithRmApostrophe drops apostrophes inside words instead of keeping contractions whole.
func WithRmApostrophe(rm bool) EngineOption {
	return func(s *settings) { s.rmApostrophe = rm }
}

// WithCacheSize bounds every memoized function to n entries.
func WithCacheSize(n int) EngineOption {
	return func(s *settings) {
		if n < 1 {
			s.err = errs.Invalid("cache-size", strconv.Itoa(n), "cache size must be at least 1", errs.ErrInvalidOption)
			return
		}
		s.cacheSize = n
	}
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(s *settings) { s.logger = l }
}

// WithRegistry replaces the embedded locale registry.
func WithRegistry(r *locale.Registry) EngineOption {
	return func(s *settings) { s.registry = r }
}

// WithDictionaryStore attaches persistent user dictionaries.
func WithDictionaryStore(st dictstore.Store) EngineOption {
	return func(s *settings) { s.store = st }
}

// WithEasyWordList replaces the packaged easy-word list of one locale.
// source names where the words came from and is shown in diagnostics.
func WithEasyWordList(localeID, source string, words []string) EngineOption {
	return func(s *settings) {
		s.easyWords[localeID] = easyOverride{source: source, words: append([]string(nil), words...)}
	}
}

type callSettings struct {
	rounding      RoundingPolicy
	variant       int
	integerOutput bool
	topN          int
	noWords       bool
	noSuggestions bool
	err           error
}

// CallOption tunes a single formula or report call.
type CallOption func(*callSettings)

// WithRounding rounds this call's output to points decimals.
func WithRounding(points int) CallOption {
	return func(c *callSettings) {
		p := RoundingPolicy{Enabled: true, Precision: points}
		if err := p.Validate(); err != nil {
			c.err = err
			return
		}
		c.rounding = p
	}
}

// WithoutRounding returns this call's output unrounded.
func WithoutRounding() CallOption {
	return func(c *callSettings) { c.rounding.Enabled = false }
}

// WithVariant selects a formula variant. Only wiener_sachtextformel has more than one.
func WithVariant(n int) CallOption {
	return func(c *callSettings) { c.variant = n }
}

// WithIntegerOutput truncates the score toward zero before rounding.
func WithIntegerOutput() CallOption {
	return func(c *callSettings) { c.integerOutput = true }
}

// WithTopN sets how many sentences a verbose report keeps.
func WithTopN(n int) CallOption {
	return func(c *callSettings) {
		if n < 1 {
			c.err = errs.Invalid("top-n", strconv.Itoa(n), "top-n must be at least 1", errs.ErrInvalidOption)
			return
		}
		c.topN = n
	}
}

// WithoutWordAnalysis leaves ComplexSentence.DifficultWords nil.
func WithoutWordAnalysis() CallOption {
	return func(c *callSettings) { c.noWords = true }
}

// WithoutSuggestions leaves ComplexSentence.Suggestions nil.
func WithoutSuggestions() CallOption {
	return func(c *callSettings) { c.noSuggestions = true }
}

func (e *Engine) callSettings(opts []CallOption) (callSettings, error) {
	cs := callSettings{rounding: e.rounding, variant: 1, topN: DefaultTopN}
	for _, opt := range opts {
		opt(&cs)
	}
	return cs, cs.err
}
