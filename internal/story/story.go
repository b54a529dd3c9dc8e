// Package story loads and normalizes the story text.
package story

import (
	"fmt"
	"os"
	"strings"
)

// Return is the display glyph that stands in for a line break.
const Return rune = '↩'

// normalizer folds line breaks and unicode punctuation so every story
// character is reachable through a layout layer or the return glyph.
var normalizer = strings.NewReplacer(
	"\r\n", string(Return),
	"\n", string(Return),
	"—", "-", // em dash
	"–", "-", // en dash
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
)

// Story is the normalized, immutable target text.
type Story struct {
	Path  string
	runes []rune
}

// Load reads the story file and normalizes it. Normalization runs before
// any layout lookup can see the text.
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story: %w", err)
	}
	return &Story{Path: path, runes: []rune(Normalize(string(data)))}, nil
}

// New builds a story from already-loaded text.
func New(text string) *Story {
	return &Story{runes: []rune(Normalize(text))}
}

// Normalize applies the line-break and punctuation folding.
func Normalize(text string) string {
	return normalizer.Replace(text)
}

// Next returns the character at the cursor offset, or false at the end
// of the story.
func (s *Story) Next(cursor int) (rune, bool) {
	if cursor < 0 || cursor >= len(s.runes) {
		return 0, false
	}
	return s.runes[cursor], true
}

// Len returns the story length in characters.
func (s *Story) Len() int {
	return len(s.runes)
}

// Runes exposes the normalized text for rendering.
func (s *Story) Runes() []rune {
	return s.runes
}
