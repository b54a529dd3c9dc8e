package tui

import "testing"

func storyRunes(n int) []rune {
	text := make([]rune, n)
	for i := range text {
		text[i] = rune('a' + i%26)
	}
	return text
}

func TestWindowNeverExceedsWidth(t *testing.T) {
	text := storyRunes(200)
	for _, width := range []int{1, 2, 3, 10, 30, 81} {
		for cursor := 0; cursor <= len(text); cursor++ {
			w := windowAround(text, cursor, width)
			if w.len() > width {
				t.Fatalf("width %d cursor %d: window len %d", width, cursor, w.len())
			}
		}
	}
}

func TestWindowFullAwayFromBoundaries(t *testing.T) {
	text := storyRunes(200)
	width := 30
	for cursor := width; cursor < len(text)-width; cursor++ {
		w := windowAround(text, cursor, width)
		if w.len() != width {
			t.Fatalf("cursor %d: window len %d, want %d", cursor, w.len(), width)
		}
		if len(w.prefix) != width/3 {
			t.Fatalf("cursor %d: prefix len %d, want %d", cursor, len(w.prefix), width/3)
		}
	}
}

func TestWindowSuffixAbsorbsPrefixBudget(t *testing.T) {
	text := storyRunes(200)
	width := 30
	for cursor := 0; cursor < width/3; cursor++ {
		w := windowAround(text, cursor, width)
		if len(w.prefix) != cursor {
			t.Fatalf("cursor %d: prefix len %d, want %d", cursor, len(w.prefix), cursor)
		}
		if w.len() != width {
			t.Fatalf("cursor %d: window len %d, want %d", cursor, w.len(), width)
		}
	}
}

func TestWindowClampsAtEnd(t *testing.T) {
	text := storyRunes(10)
	w := windowAround(text, len(text), 30)
	if len(w.current) != 0 || len(w.suffix) != 0 {
		t.Fatalf("expected empty current and suffix at end")
	}
	if len(w.prefix) != 10 {
		t.Fatalf("expected full remaining prefix, got %d", len(w.prefix))
	}
	w = windowAround(text, 50, 30)
	if w.len() > 30 {
		t.Fatalf("out-of-range cursor must clamp, got len %d", w.len())
	}
}

func TestWindowContentMatchesText(t *testing.T) {
	text := []rune("abcdefghij")
	w := windowAround(text, 4, 9)
	if string(w.prefix) != "bcd" || string(w.current) != "e" || string(w.suffix) != "fghij" {
		t.Fatalf("unexpected window %q %q %q", string(w.prefix), string(w.current), string(w.suffix))
	}
}
