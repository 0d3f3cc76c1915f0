// Package report renders readability results as plain terminal text.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable lays out rows under headers, padding cells to the widest
// entry of each column. Columns in rightAlign are right-justified.
func FormatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlign))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, width, rightAlign[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, right bool) string {
	if right {
		return runewidth.FillLeft(value, width)
	}
	return runewidth.FillRight(value, width)
}

// Wrap breaks text at spaces so that no line exceeds width display columns.
// Words wider than width stand on their own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line, lineWidth := words[0], runewidth.StringWidth(words[0])
	for _, w := range words[1:] {
		ww := runewidth.StringWidth(w)
		if lineWidth+1+ww > width {
			lines = append(lines, line)
			line, lineWidth = w, ww
			continue
		}
		line += " " + w
		lineWidth += 1 + ww
	}
	return append(lines, line)
}
