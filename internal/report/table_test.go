package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Metric", "Score", "Grade"}
	rows := [][]string{
		{"lix", "25", "4"},
		{"gunning_fog", "10.5", "10"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Metric      Score Grade" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "lix            25     4" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "gunning_fog  10.5    10" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := FormatTable([]string{"Word", "N"}, [][]string{{"漢字", "2"}, {"ab", "1"}}, map[int]bool{1: true})
	if lines[1] != "漢字 2" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "ab   1" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}
