// Package tui provides the Bubble Tea typing interface.
package tui

type textWindow struct {
	prefix  []rune
	current []rune
	suffix  []rune
}

// windowAround slices a bounded view of the story around the cursor.
// The prefix gets at most a third of the width; the suffix inherits
// whatever the prefix left unused, so the window stays at full width
// even when the cursor sits near the start of the text.
func windowAround(text []rune, cursor, width int) textWindow {
	if width <= 0 {
		return textWindow{}
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	prefixBudget := width / 3
	start := cursor - prefixBudget
	if start < 0 {
		start = 0
	}
	w := textWindow{prefix: text[start:cursor]}
	budget := width - len(w.prefix)
	if cursor < len(text) && budget > 0 {
		w.current = text[cursor : cursor+1]
		budget--
	}
	if budget > 0 && cursor+1 < len(text) {
		end := cursor + 1 + budget
		if end > len(text) {
			end = len(text)
		}
		w.suffix = text[cursor+1 : end]
	}
	return w
}

func (w textWindow) len() int {
	return len(w.prefix) + len(w.current) + len(w.suffix)
}
