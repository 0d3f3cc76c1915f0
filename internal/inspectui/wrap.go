package inspectui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

type wordRange struct {
	start int
	end   int
}

// findWords returns the rune ranges of letter/digit/apostrophe runs.
func findWords(runes []rune) []wordRange {
	var words []wordRange
	start := -1
	for i, r := range runes {
		inWord := unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '\'' || r == '’'
		switch {
		case inWord && start == -1:
			start = i
		case !inWord && start != -1:
			words = append(words, wordRange{start: start, end: i})
			start = -1
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(runes)})
	}
	return words
}

// buildStyledRunes styles every rune of text, using highlight for words
// whose lower-cased form is in marked.
func buildStyledRunes(text string, marked map[string]bool, base, highlight lipgloss.Style) []styledRune {
	runes := []rune(text)
	hot := make([]bool, len(runes))
	for _, w := range findWords(runes) {
		if marked[strings.ToLower(string(runes[w.start:w.end]))] {
			for i := w.start; i < w.end; i++ {
				hot[i] = true
			}
		}
	}
	out := make([]styledRune, 0, len(runes))
	for i, r := range runes {
		style := base
		if hot[i] {
			style = highlight
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: unicode.IsSpace(r),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks at the last space that keeps a line within width.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpace := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpace]))
				line = append([]styledRune{}, line[lastSpace+1:]...)
			} else {
				out.WriteString(renderStyledRunes(line))
				line = line[:0]
			}
			out.WriteRune('\n')
			lineWidth, lastSpace = measure(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func measure(line []styledRune) (width, lastSpace int) {
	lastSpace = -1
	for i, item := range line {
		width += item.width
		if item.isSpace {
			lastSpace = i
		}
	}
	return width, lastSpace
}

// highlightSentence wraps text to width, highlighting the difficult words.
func highlightSentence(text string, difficult []string, width int) string {
	marked := make(map[string]bool, len(difficult))
	for _, w := range difficult {
		marked[strings.ToLower(w)] = true
	}
	return wrapStyledRunes(buildStyledRunes(text, marked, sentenceStyle, difficultStyle), width)
}
