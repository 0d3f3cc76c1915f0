package locale

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/verte-zerg/readgrade/internal/dictstore"
	"github.com/verte-zerg/readgrade/internal/errs"
	"github.com/verte-zerg/readgrade/internal/wordlist"
)

//go:embed data
var embedded embed.FS

const (
	tableFile     = "locales.toml"
	easyWordsFile = "easy_words.txt"
	dictFile      = "custom_dict.json"
)

// Source provides locale configs by exact key.
type Source interface {
	// Config returns the config stored under id, or an error wrapping
	// errs.ErrUnknownLocale when there is none.
	Config(id string) (*Config, error)
	// IDs lists the stored keys in sorted order.
	IDs() []string
}

// TableSource is a Source decoded from a locales.toml document.
type TableSource struct {
	configs map[string]*Config
	ids     []string
}

var _ Source = (*TableSource)(nil)

type document struct {
	Defaults record            `toml:"defaults"`
	Locales  map[string]record `toml:"locales"`
}

type bandRecord struct {
	Bound  float64 `toml:"bound"`
	Grades []int   `toml:"grades"`
}

// record mirrors Config with optional fields so a locale table only lists
// what differs from [defaults].
type record struct {
	Inherit *string `toml:"inherit"`
	Name    *string `toml:"name"`

	FleschBase     *float64 `toml:"flesch-base"`
	FleschSentence *float64 `toml:"flesch-sentence"`
	FleschSyllable *float64 `toml:"flesch-syllable"`

	PolysyllableSyllables *int     `toml:"polysyllable-syllables"`
	DifficultSyllables    *int     `toml:"difficult-syllables"`
	LongWordLetters       *int     `toml:"long-word-letters"`
	MiniWordLetters       *int     `toml:"mini-word-letters"`
	LongSentenceWords     *int     `toml:"long-sentence-words"`
	ReadingWPM            *float64 `toml:"reading-wpm"`

	ReadingEaseBands []bandRecord `toml:"reading-ease-bands"`
	DaleChallBands   []bandRecord `toml:"dale-chall-bands"`

	Terminators        *string  `toml:"terminators"`
	ClosingQuotes      *string  `toml:"closing-quotes"`
	Apostrophes        *string  `toml:"apostrophes"`
	Contractions       []string `toml:"contractions"`
	TitleAbbreviations []string `toml:"title-abbreviations"`
	Abbreviations      []string `toml:"abbreviations"`
	MinSentenceWords   *int     `toml:"min-sentence-words"`
	DialogueDash       *bool    `toml:"dialogue-dash"`
	AcronymBreaks      *bool    `toml:"acronym-breaks"`
	ProperNouns        *bool    `toml:"proper-nouns"`

	Syllabifier  *string  `toml:"syllabifier"`
	Vowels       *string  `toml:"vowels"`
	Hiatus       []string `toml:"hiatus"`
	Glides       *string  `toml:"glides"`
	SilentFinals []string `toml:"silent-finals"`
	SuffixRules  []string `toml:"suffix-rules"`
}

var embeddedSource = sync.OnceValues(func() (*TableSource, error) {
	data, err := embedded.ReadFile(path.Join("data", tableFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locale table: %w", err)
	}
	files, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locale data: %w", err)
	}
	return NewTableSource(data, files)
})

// Embedded returns the source built from the packaged locale data.
func Embedded() (*TableSource, error) {
	return embeddedSource()
}

// NewTableSource decodes a locales.toml document. When files is non-nil,
// <id>/easy_words.txt and <id>/custom_dict.json are read from it; a locale
// with an inherit key falls back to its parent's files.
func NewTableSource(data []byte, files fs.FS) (*TableSource, error) {
	var doc document
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, &errs.ParseError{Source: tableFile, Err: err}
	}
	src := &TableSource{configs: make(map[string]*Config, len(doc.Locales))}
	for rawID := range doc.Locales {
		id := strings.ToLower(rawID)
		merged, chain, err := resolve(doc, rawID, nil)
		if err != nil {
			return nil, err
		}
		cfg, err := build(id, merged)
		if err != nil {
			return nil, err
		}
		if files != nil {
			if err := attachFiles(cfg, files, chain); err != nil {
				return nil, err
			}
		}
		src.configs[id] = cfg
		src.ids = append(src.ids, id)
	}
	sort.Strings(src.ids)
	return src, nil
}

// Config returns the config stored under id.
func (s *TableSource) Config(id string) (*Config, error) {
	cfg, ok := s.configs[strings.ToLower(id)]
	if !ok {
		return nil, &errs.NotFoundError{Resource: "locale", ID: id, Err: errs.ErrUnknownLocale}
	}
	return cfg, nil
}

// IDs lists the stored locale keys.
func (s *TableSource) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// resolve layers defaults, the inherit chain and the locale's own table.
// chain lists the locale id first, then its ancestors.
func resolve(doc document, id string, seen map[string]bool) (record, []string, error) {
	own, ok := doc.Locales[id]
	if !ok {
		return record{}, nil, &errs.NotFoundError{Resource: "locale", ID: id, Err: errs.ErrUnknownLocale}
	}
	if seen == nil {
		seen = map[string]bool{}
	}
	if seen[id] {
		return record{}, nil, errs.Invalid("inherit", id, "inheritance cycle", nil)
	}
	seen[id] = true

	base := doc.Defaults
	var chain []string
	if own.Inherit != nil {
		parent, parentChain, err := resolve(doc, *own.Inherit, seen)
		if err != nil {
			return record{}, nil, fmt.Errorf("locale %s: %w", id, err)
		}
		base = parent
		chain = parentChain
	}
	merge(&base, own)
	return base, append([]string{strings.ToLower(id)}, chain...), nil
}

func merge(dst *record, src record) {
	setPtr(&dst.Name, src.Name)
	setPtr(&dst.FleschBase, src.FleschBase)
	setPtr(&dst.FleschSentence, src.FleschSentence)
	setPtr(&dst.FleschSyllable, src.FleschSyllable)
	setPtr(&dst.PolysyllableSyllables, src.PolysyllableSyllables)
	setPtr(&dst.DifficultSyllables, src.DifficultSyllables)
	setPtr(&dst.LongWordLetters, src.LongWordLetters)
	setPtr(&dst.MiniWordLetters, src.MiniWordLetters)
	setPtr(&dst.LongSentenceWords, src.LongSentenceWords)
	setPtr(&dst.ReadingWPM, src.ReadingWPM)
	setSlice(&dst.ReadingEaseBands, src.ReadingEaseBands)
	setSlice(&dst.DaleChallBands, src.DaleChallBands)
	setPtr(&dst.Terminators, src.Terminators)
	setPtr(&dst.ClosingQuotes, src.ClosingQuotes)
	setPtr(&dst.Apostrophes, src.Apostrophes)
	setSlice(&dst.Contractions, src.Contractions)
	setSlice(&dst.TitleAbbreviations, src.TitleAbbreviations)
	setSlice(&dst.Abbreviations, src.Abbreviations)
	setPtr(&dst.MinSentenceWords, src.MinSentenceWords)
	setPtr(&dst.DialogueDash, src.DialogueDash)
	setPtr(&dst.AcronymBreaks, src.AcronymBreaks)
	setPtr(&dst.ProperNouns, src.ProperNouns)
	setPtr(&dst.Syllabifier, src.Syllabifier)
	setPtr(&dst.Vowels, src.Vowels)
	setSlice(&dst.Hiatus, src.Hiatus)
	setPtr(&dst.Glides, src.Glides)
	setSlice(&dst.SilentFinals, src.SilentFinals)
	setSlice(&dst.SuffixRules, src.SuffixRules)
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func setSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

func build(id string, r record) (*Config, error) {
	cfg := &Config{
		ID:                    id,
		Name:                  deref(r.Name),
		FleschBase:            deref(r.FleschBase),
		FleschSentence:        deref(r.FleschSentence),
		FleschSyllable:        deref(r.FleschSyllable),
		PolysyllableSyllables: deref(r.PolysyllableSyllables),
		DifficultSyllables:    deref(r.DifficultSyllables),
		LongWordLetters:       deref(r.LongWordLetters),
		MiniWordLetters:       deref(r.MiniWordLetters),
		LongSentenceWords:     deref(r.LongSentenceWords),
		ReadingWPM:            deref(r.ReadingWPM),
		Terminators:           deref(r.Terminators),
		ClosingQuotes:         deref(r.ClosingQuotes),
		Apostrophes:           deref(r.Apostrophes),
		Contractions:          r.Contractions,
		TitleAbbreviations:    r.TitleAbbreviations,
		Abbreviations:         r.Abbreviations,
		MinSentenceWords:      deref(r.MinSentenceWords),
		DialogueDash:          deref(r.DialogueDash),
		AcronymBreaks:         deref(r.AcronymBreaks),
		ProperNouns:           deref(r.ProperNouns),
		Syllabifier:           deref(r.Syllabifier),
		Vowels:                deref(r.Vowels),
		Hiatus:                r.Hiatus,
		Glides:                deref(r.Glides),
		SilentFinals:          r.SilentFinals,
		easy:                  map[string]struct{}{},
		dict:                  map[string]int{},
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return nil, errs.Invalid("locale", id, "not a BCP 47 tag", err)
	}
	cfg.Tag = tag
	if cfg.Name == "" {
		cfg.Name = id
	}
	if cfg.Terminators == "" {
		return nil, errs.Invalid("terminators", id, "locale has no sentence terminators", nil)
	}
	if cfg.ReadingWPM <= 0 {
		return nil, errs.Invalid("reading-wpm", id, "must be positive", nil)
	}
	for _, b := range r.ReadingEaseBands {
		cfg.ReadingEaseBands = append(cfg.ReadingEaseBands, Band{Bound: b.Bound, Grades: b.Grades})
	}
	for _, b := range r.DaleChallBands {
		cfg.DaleChallBands = append(cfg.DaleChallBands, Band{Bound: b.Bound, Grades: b.Grades})
	}
	for _, rule := range r.SuffixRules {
		suffix, repl, ok := strings.Cut(rule, ">")
		if !ok || suffix == "" {
			return nil, errs.Invalid("suffix-rules", rule, "expected suffix>replacement", nil)
		}
		cfg.SuffixRules = append(cfg.SuffixRules, SuffixRule{Suffix: suffix, Replacement: repl})
	}
	cfg.titles = lowerSet(r.TitleAbbreviations)
	cfg.abbrevs = lowerSet(r.Abbreviations)
	return cfg, nil
}

func attachFiles(cfg *Config, files fs.FS, chain []string) error {
	for _, id := range chain {
		data, err := fs.ReadFile(files, path.Join(id, easyWordsFile))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read easy words for %s: %w", id, err)
		}
		words, err := wordlist.ParseWords(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to parse easy words for %s: %w", id, err)
		}
		cfg.easy = wordlist.Set(words)
		cfg.easySource = "embedded:" + id
		break
	}
	for _, id := range chain {
		name := path.Join(id, dictFile)
		data, err := fs.ReadFile(files, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read default dictionary for %s: %w", id, err)
		}
		terms, err := dictstore.DecodePayload(name, bytes.NewReader(data))
		if err != nil {
			return err
		}
		cfg.dict = terms
		break
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSuffix(item, "."))] = struct{}{}
	}
	return set
}
