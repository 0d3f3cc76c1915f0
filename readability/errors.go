package readability

import "github.com/verte-zerg/readgrade/internal/errs"

// Sentinels, matched with errors.Is.
var (
	ErrNotFound             = errs.ErrNotFound
	ErrInvalidInput         = errs.ErrInvalidInput
	ErrUnsupported          = errs.ErrUnsupported
	ErrMalformed            = errs.ErrMalformed
	ErrUnknownLocale        = errs.ErrUnknownLocale
	ErrUnknownMetric        = errs.ErrUnknownMetric
	ErrInvalidPrecision     = errs.ErrInvalidPrecision
	ErrInvalidSyllableCount = errs.ErrInvalidSyllableCount
	ErrUnsupportedFormula   = errs.ErrUnsupportedFormula
	ErrMalformedDictionary  = errs.ErrMalformedDictionary
	ErrNoDictionaryStore    = errs.ErrNoDictionaryStore
	ErrInvalidOption        = errs.ErrInvalidOption
)

// Typed errors, matched with errors.As.
type (
	NotFoundError      = errs.NotFoundError
	ValidationError    = errs.ValidationError
	ParseError         = errs.ParseError
	FormulaLocaleError = errs.FormulaLocaleError
)
