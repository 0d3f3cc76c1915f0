package textseg

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/readgrade/internal/locale"
)

const openingMarks = "\"'“‘«„([¿¡"

// Sentences splits text using the locale's terminator and abbreviation rules.
// Fragments of at most MinSentenceWords words are merged into a neighbour.
func Sentences(text string, cfg *locale.Config) []string {
	runes := []rune(text)
	n := len(runes)
	var raw []string
	start := 0
	for i := 0; i < n; {
		if !cfg.IsTerminator(runes[i]) {
			i++
			continue
		}
		j := i
		for j < n && cfg.IsTerminator(runes[j]) {
			j++
		}
		k := j
		for k < n && cfg.IsClosingQuote(runes[k]) {
			k++
		}
		if k < n && !unicode.IsSpace(runes[k]) {
			i = k
			continue
		}
		if k >= n || endsSentence(runes, start, i, j, k, cfg) {
			if s := strings.TrimSpace(string(runes[start:k])); s != "" {
				raw = append(raw, s)
			}
			start = k
		}
		i = k
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		raw = append(raw, s)
	}
	return mergeFragments(raw, cfg)
}

// endsSentence decides whether the terminator run runes[i:j], followed by
// closing quotes up to k and then whitespace, closes the sentence.
func endsSentence(runes []rune, start, i, j, k int, cfg *locale.Config) bool {
	run := string(runes[i:j])
	if strings.Contains(run, "…") || strings.Count(run, ".") > 1 {
		return false
	}
	if cfg.DialogueDash && dashFollows(runes, k) {
		return false
	}
	if run != "." {
		return true
	}

	ts := i
	for ts > start && !unicode.IsSpace(runes[ts-1]) {
		ts--
	}
	token := strings.ToLower(strings.TrimLeft(string(runes[ts:i]), openingMarks))
	next := nextWordRune(runes, k)

	switch {
	case token == "":
		return true
	case cfg.IsTitleAbbreviation(token):
		return false
	case cfg.IsAbbreviation(token):
		return unicode.IsUpper(next)
	case isInitial(token):
		return false
	case strings.Contains(token, "."):
		return cfg.AcronymBreaks
	case unicode.IsLower(next):
		return false
	}
	return true
}

func isInitial(token string) bool {
	runes := []rune(token)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}

// dashFollows reports whether a dash follows on the same line.
func dashFollows(runes []rune, k int) bool {
	for m := k; m < len(runes); m++ {
		switch r := runes[m]; {
		case r == '\n':
			return false
		case unicode.IsSpace(r):
			continue
		default:
			return r == '—' || r == '–' || r == '-'
		}
	}
	return false
}

func nextWordRune(runes []rune, k int) rune {
	m := k
	for m < len(runes) && (unicode.IsSpace(runes[m]) || strings.ContainsRune(openingMarks, runes[m])) {
		m++
	}
	if m >= len(runes) {
		return 0
	}
	return runes[m]
}

func mergeFragments(raw []string, cfg *locale.Config) []string {
	out := make([]string, 0, len(raw))
	lastWords := 0
	for _, s := range raw {
		wc := len(Words(s, true, cfg))
		switch {
		case len(out) == 0 && wc == 0:
			continue
		case len(out) > 0 && (wc <= cfg.MinSentenceWords || lastWords <= cfg.MinSentenceWords):
			out[len(out)-1] += " " + s
			lastWords += wc
		default:
			out = append(out, s)
			lastWords = wc
		}
	}
	return out
}

// SentenceCount returns the number of sentences. Text with a word has at least one.
func SentenceCount(text string, cfg *locale.Config) int {
	return len(Sentences(text, cfg))
}
