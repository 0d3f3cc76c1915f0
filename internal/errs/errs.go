// Package errs defines the error taxonomy shared by readgrade packages.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases.
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an operation that is not available in the current configuration.
	ErrUnsupported = errors.New("unsupported")
	// ErrMalformed indicates a payload that could not be parsed.
	ErrMalformed = errors.New("malformed")
)

// Domain sentinels. Each one wraps the generic category above so callers
// can match on either level.
var (
	ErrUnknownLocale        = fmt.Errorf("unknown locale: %w", ErrNotFound)
	ErrUnknownMetric        = fmt.Errorf("unknown metric: %w", ErrNotFound)
	ErrInvalidPrecision     = fmt.Errorf("invalid rounding precision: %w", ErrInvalidInput)
	ErrInvalidSyllableCount = fmt.Errorf("invalid syllable count: %w", ErrInvalidInput)
	ErrUnsupportedFormula   = fmt.Errorf("formula not available for locale: %w", ErrUnsupported)
	ErrMalformedDictionary  = fmt.Errorf("malformed dictionary: %w", ErrMalformed)
	ErrNoDictionaryStore    = fmt.Errorf("no dictionary store configured: %w", ErrUnsupported)
	ErrInvalidOption        = fmt.Errorf("invalid option: %w", ErrInvalidInput)
)

// NotFoundError represents a missing resource with context.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents a rejected configuration value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap always reports ErrInvalidInput alongside the specific cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Err, ErrInvalidInput}
	}
	return []error{ErrInvalidInput}
}

// ParseError represents a persisted payload that could not be decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("failed to parse %s", e.Source)
}

// Unwrap exposes both the malformed-dictionary sentinel and the decoder error.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedDictionary, e.Err}
	}
	return []error{ErrMalformedDictionary}
}

// FormulaLocaleError reports a locale-specific formula called under another locale.
type FormulaLocaleError struct {
	Metric    string
	Locale    string
	Supported []string
}

func (e *FormulaLocaleError) Error() string {
	return fmt.Sprintf("%s is not available for locale %q (supported: %v)", e.Metric, e.Locale, e.Supported)
}

func (e *FormulaLocaleError) Unwrap() error {
	return ErrUnsupportedFormula
}

// Invalid is shorthand for building a ValidationError.
func Invalid(field, value, message string, err error) error {
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}
