package readability

import (
	"fmt"
	"sync"
)

var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	return New()
})

// Default returns the process-wide engine, building it on first use. It
// panics only if the embedded locale data is broken.
func Default() *Engine {
	e, err := defaultEngine()
	if err != nil {
		panic(fmt.Sprintf("readability: default engine: %v", err))
	}
	return e
}

// SetLang switches the locale of the default engine.
func SetLang(id string) error { return Default().SetLang(id) }

// SetRounding sets the rounding policy of the default engine.
func SetRounding(enabled bool, precision int) error {
	return Default().SetRounding(enabled, precision)
}

// SetRmApostrophe toggles apostrophe removal on the default engine.
func SetRmApostrophe(rm bool) { Default().SetRmApostrophe(rm) }

// Score computes metric with the default engine.
func Score(m Metric, text string, opts ...CallOption) (float64, error) {
	return Default().Score(m, text, opts...)
}

// Report explains metric with the default engine.
func Report(m Metric, text string, opts ...CallOption) (VerboseReport, error) {
	return Default().Report(m, text, opts...)
}

// TextStandard returns the consensus grade range with the default engine.
func TextStandard(text string) string { return Default().TextStandard(text) }

// ClearCaches empties the caches of the default engine.
func ClearCaches() { Default().ClearCaches() }
