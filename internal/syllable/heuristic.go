package syllable

import (
	"strings"

	"github.com/verte-zerg/readgrade/internal/locale"
)

// Heuristic estimates syllables for a lower-cased word made of letters.
type Heuristic interface {
	Syllables(word []rune) int
}

// HeuristicFor returns the heuristic named by the locale's syllabifier.
func HeuristicFor(cfg *locale.Config) Heuristic {
	switch cfg.Syllabifier {
	case "english":
		return english{cfg: cfg}
	case "french":
		return french{cfg: cfg}
	case "nucleus":
		return nucleus{cfg: cfg}
	case "arabic":
		return arabic{cfg: cfg}
	default:
		return newCluster(cfg)
	}
}

type group struct{ start, end int }

// vowelGroups returns maximal runs of positions for which isVowel holds.
func vowelGroups(word []rune, isVowel func(i int) bool) []group {
	var groups []group
	for i := 0; i < len(word); {
		if !isVowel(i) {
			i++
			continue
		}
		j := i
		for j < len(word) && isVowel(j) {
			j++
		}
		groups = append(groups, group{start: i, end: j})
		i = j
	}
	return groups
}

func hasSuffix(word []rune, suffix string) bool {
	return strings.HasSuffix(string(word), suffix)
}

type english struct{ cfg *locale.Config }

var silentESuffixes = []string{"ly", "ment", "ful", "ness", "less"}

func (h english) Syllables(word []rune) int {
	n := len(word)
	if n == 0 {
		return 0
	}
	if n <= 3 {
		return 1
	}
	isVowel := func(i int) bool {
		r := word[i]
		if r == 'y' {
			if i == 0 {
				return false
			}
			if i+1 < n && word[i+1] != 'y' && h.cfg.IsVowel(word[i+1]) {
				return false
			}
			return true
		}
		return h.cfg.IsVowel(r)
	}
	consonant := func(i int) bool { return i >= 0 && !isVowel(i) }

	groups := vowelGroups(word, isVowel)
	count := len(groups)
	if count == 0 {
		return 1
	}
	last := groups[len(groups)-1]
	ownGroup := func(i int) bool { return last.start == i && last.end == i+1 }

	switch {
	case word[n-1] == 'e' && ownGroup(n-1) && count > 1:
		if !(word[n-2] == 'l' && consonant(n-3)) {
			count--
		}
	case hasSuffix(word, "es") && ownGroup(n-2) && count > 1:
		prev := word[n-3]
		switch {
		case strings.ContainsRune("sxzcg", prev):
		case prev == 'h' && n >= 4 && (word[n-4] == 'c' || word[n-4] == 's'):
		case prev == 'l' && consonant(n-4):
		default:
			count--
		}
	case hasSuffix(word, "ed") && ownGroup(n-2) && count > 1:
		if prev := word[n-3]; prev != 't' && prev != 'd' {
			count--
		}
	}

	for _, suffix := range silentESuffixes {
		if !hasSuffix(word, suffix) {
			continue
		}
		e := n - len([]rune(suffix)) - 1
		if e > 0 && word[e] == 'e' && consonant(e-1) && count > 1 {
			for _, g := range groups {
				if g.start == e && g.end == e+1 {
					count--
					break
				}
			}
		}
		break
	}

	if hasSuffix(word, "ing") && n > 4 {
		for _, g := range groups {
			if g.end == n-2 && g.start < n-3 {
				count++
				break
			}
		}
	}
	for _, suffix := range []string{"ia", "io", "ium"} {
		if !hasSuffix(word, suffix) {
			continue
		}
		i := n - len(suffix)
		for _, g := range groups {
			if g.start == i && g.end == i+2 && consonant(i-1) {
				count++
				break
			}
		}
		break
	}
	return max(count, 1)
}

type french struct{ cfg *locale.Config }

func (h french) Syllables(word []rune) int {
	if len(word) == 0 {
		return 0
	}
	groups := vowelGroups(word, func(i int) bool { return h.cfg.IsVowel(word[i]) })
	count := len(groups)
	if count == 0 {
		return 1
	}
	last := groups[len(groups)-1]
	for _, final := range h.cfg.SilentFinals {
		if !hasSuffix(word, final) {
			continue
		}
		e := len(word) - len([]rune(final))
		floor := 1
		if len([]rune(final)) > 2 {
			floor = 2
		}
		if last.start == e && last.end == e+1 && count > floor {
			count--
		}
		break
	}
	return max(count, 1)
}

// cluster counts maximal vowel runs, splitting a run at each hiatus pair.
type cluster struct {
	cfg    *locale.Config
	hiatus map[string]struct{}
}

func newCluster(cfg *locale.Config) cluster {
	set := make(map[string]struct{}, len(cfg.Hiatus))
	for _, pair := range cfg.Hiatus {
		set[pair] = struct{}{}
	}
	return cluster{cfg: cfg, hiatus: set}
}

func (h cluster) Syllables(word []rune) int {
	if len(word) == 0 {
		return 0
	}
	isVowel := func(i int) bool {
		if word[i] == 'u' && i > 0 && word[i-1] == 'q' {
			return false
		}
		return h.cfg.IsVowel(word[i])
	}
	count := 0
	for _, g := range vowelGroups(word, isVowel) {
		count++
		for k := g.start; k+1 < g.end; k++ {
			if _, ok := h.hiatus[string(word[k:k+2])]; ok {
				count++
			}
		}
	}
	return max(count, 1)
}

// nucleus counts every vowel letter, except a glide directly before another vowel.
type nucleus struct{ cfg *locale.Config }

func (h nucleus) Syllables(word []rune) int {
	if len(word) == 0 {
		return 0
	}
	count := 0
	for i, r := range word {
		if !h.cfg.IsVowel(r) {
			continue
		}
		if h.cfg.IsGlide(r) && i+1 < len(word) && h.cfg.IsVowel(word[i+1]) {
			continue
		}
		count++
	}
	return max(count, 1)
}

type arabic struct{ cfg *locale.Config }

const (
	tanweenFirst = '\u064B'
	kasra        = '\u0650'
)

func isShortVowelMark(r rune) bool {
	return r >= tanweenFirst && r <= kasra
}

// Syllables counts short-vowel marks when the word is vocalized. Otherwise it
// estimates one syllable per consonant pair plus one per long vowel after the
// first letter.
func (h arabic) Syllables(word []rune) int {
	if len(word) == 0 {
		return 0
	}
	marks := 0
	for _, r := range word {
		if isShortVowelMark(r) {
			marks++
		}
	}
	if marks > 0 {
		return marks
	}
	consonants, long := 0, 0
	for i, r := range word {
		switch {
		case h.cfg.IsVowel(r) && i > 0:
			long++
		case h.cfg.IsVowel(r):
		default:
			consonants++
		}
	}
	estimate := long
	if rest := consonants - long; rest > 0 {
		estimate += (rest + 1) / 2
	}
	return max(estimate, 1)
}
