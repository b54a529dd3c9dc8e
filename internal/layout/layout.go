// Package layout defines keyboard layout tables and key lookup.
package layout

import "unicode"

// Empty marks a grid cell that has no key on it.
const Empty rune = 0

// Row is one physical key row of a layer.
type Row = []rune

// Modifier identifies the layer modifier needed to produce a character.
type Modifier int

// Modifier values. ModNone means a plain base-layer key.
const (
	ModNone Modifier = iota
	ModShift
	ModSym
	ModCur
)

// String returns the indicator label for the modifier.
func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "shift"
	case ModSym:
		return "sym"
	case ModCur:
		return "cur"
	default:
		return ""
	}
}

// Location points at a key in the base grid coordinate space.
type Location struct {
	Row      int
	Col      int
	Modifier Modifier
}

// Layout is an immutable keyboard layout with up to three layers.
// Sym and Cur may be empty. CurOffset shifts Cur-layer columns into the
// base grid coordinate space.
type Layout struct {
	Name      string
	Base      []Row
	Sym       []Row
	Cur       []Row
	CurOffset int
}

// Shift maps an unshifted base-layer character to its shifted form.
func Shift(r rune) rune {
	switch r {
	case '`':
		return '~'
	case '1':
		return '!'
	case '2':
		return '@'
	case '3':
		return '#'
	case '4':
		return '$'
	case '5':
		return '%'
	case '6':
		return '^'
	case '7':
		return '&'
	case '8':
		return '*'
	case '9':
		return '('
	case '0':
		return ')'
	case '[':
		return '{'
	case ']':
		return '}'
	case '\'':
		return '"'
	case ',':
		return '<'
	case '.':
		return '>'
	case '/':
		return '?'
	case '=':
		return '+'
	case '\\':
		return '|'
	case '-':
		return '_'
	case ';':
		return ':'
	default:
		return unicode.ToUpper(r)
	}
}

// Locate finds the key and modifier that produce the target character.
// Layers are checked in a fixed precedence order: base verbatim, then
// sym, then cur, then base through Shift. The first match wins, so a
// character reachable both on the sym layer and as a shifted base key
// resolves to the sym layer.
func (l *Layout) Locate(target rune) (Location, bool) {
	if target == Empty {
		return Location{}, false
	}
	for rowI, row := range l.Base {
		for colI, r := range row {
			if r == target {
				return Location{Row: rowI, Col: colI}, true
			}
		}
	}
	for rowI, row := range l.Sym {
		for colI, r := range row {
			if r == target {
				return Location{Row: rowI, Col: colI, Modifier: ModSym}, true
			}
		}
	}
	for rowI, row := range l.Cur {
		for colI, r := range row {
			if r == target {
				return Location{Row: rowI, Col: colI + l.CurOffset, Modifier: ModCur}, true
			}
		}
	}
	for rowI, row := range l.Base {
		for colI, r := range row {
			if r == Empty {
				continue
			}
			if Shift(r) == target {
				return Location{Row: rowI, Col: colI, Modifier: ModShift}, true
			}
		}
	}
	return Location{}, false
}

// Cols returns the widest row of the base grid.
func (l *Layout) Cols() int {
	cols := 0
	for _, row := range l.Base {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}
