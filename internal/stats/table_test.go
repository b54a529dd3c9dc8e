package stats

import "testing"

func TestRenderColumnsAligns(t *testing.T) {
	cols := []column{
		{title: "Story"},
		{title: "WPM", rightAlign: true},
		{title: "Chars", rightAlign: true},
	}
	rows := [][]string{
		{"story.txt", "72.4", "120"},
		{"long-tale.txt", "8.0", "3"},
	}

	lines := renderColumns(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Story          WPM Chars" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "story.txt     72.4   120" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "long-tale.txt  8.0     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderColumnsUsesDisplayWidth(t *testing.T) {
	cols := []column{
		{title: "Story"},
		{title: "WPM", rightAlign: true},
	}
	// The CJK name is 8 cells wide but only 6 runes long; alignment
	// must follow the cell width.
	rows := [][]string{
		{"話す.txt", "72.4"},
		{"story.txt", "8.0"},
	}

	lines := renderColumns(cols, rows)
	if lines[0] != "Story      WPM" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "話す.txt  72.4" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "story.txt  8.0" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderColumnsShortRow(t *testing.T) {
	cols := []column{
		{title: "Story"},
		{title: "WPM", rightAlign: true},
	}
	lines := renderColumns(cols, [][]string{{"story.txt"}})
	if lines[1] != "story.txt    " {
		t.Fatalf("expected missing cell padded, got %q", lines[1])
	}
}
