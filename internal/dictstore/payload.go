// Package dictstore persists user syllable dictionaries keyed by locale.
package dictstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/readgrade/internal/errs"
)

// PayloadKey is the top-level key of a persisted dictionary document.
const PayloadKey = "CUSTOM_SYLLABLE_DICT"

// Validate lower-cases keys and rejects empty words and counts below one.
// The returned map is a fresh copy.
func Validate(terms map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(terms))
	for word, count := range terms {
		key := strings.ToLower(strings.TrimSpace(word))
		if key == "" {
			return nil, errs.Invalid("word", word, "word must not be empty", errs.ErrInvalidSyllableCount)
		}
		if count < 1 {
			return nil, errs.Invalid("syllables", strconv.Itoa(count),
				fmt.Sprintf("syllable count for %q must be a positive integer", key), errs.ErrInvalidSyllableCount)
		}
		out[key] = count
	}
	return out, nil
}

// DecodePayload parses {"CUSTOM_SYLLABLE_DICT": {"word": n}}.
// Broken JSON yields a ParseError; a well-formed document with the wrong
// shape or non-integer counts yields a ValidationError.
func DecodePayload(source string, r io.Reader) (map[string]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &errs.ParseError{Source: source, Err: err}
	}
	raw, ok := doc[PayloadKey]
	if !ok {
		return nil, errs.Invalid(PayloadKey, "", "missing "+PayloadKey+" object", errs.ErrMalformedDictionary)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var entries map[string]json.Number
	if err := dec.Decode(&entries); err != nil {
		return nil, errs.Invalid(PayloadKey, "", "expected an object of word to syllable count", errs.ErrMalformedDictionary)
	}
	terms := make(map[string]int, len(entries))
	for word, num := range entries {
		n, err := strconv.Atoi(num.String())
		if err != nil {
			return nil, errs.Invalid("syllables", num.String(),
				fmt.Sprintf("syllable count for %q must be an integer", word), errs.ErrInvalidSyllableCount)
		}
		terms[word] = n
	}
	return Validate(terms)
}

// EncodePayload writes terms in the persisted document format with sorted keys.
func EncodePayload(w io.Writer, terms map[string]int) error {
	if terms == nil {
		terms = map[string]int{}
	}
	data, err := json.MarshalIndent(map[string]map[string]int{PayloadKey: terms}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
