package tui

import (
	"testing"

	"github.com/taletype/taletype/internal/layout"
)

func hintedCells(k *keyboard) []layout.Location {
	var out []layout.Location
	for rowI, row := range k.keys {
		for colI, cell := range row {
			if cell.hinted {
				out = append(out, layout.Location{Row: rowI, Col: colI})
			}
		}
	}
	return out
}

func TestKeyboardUpdateHintsKey(t *testing.T) {
	k := newKeyboard(layout.QWERTY, true)
	k.update('a', true)
	cells := hintedCells(k)
	if len(cells) != 1 {
		t.Fatalf("expected exactly one hinted key, got %d", len(cells))
	}
	loc, _ := k.layout.Locate('a')
	if cells[0].Row != loc.Row || cells[0].Col != loc.Col {
		t.Fatalf("hinted (%d,%d), want (%d,%d)", cells[0].Row, cells[0].Col, loc.Row, loc.Col)
	}
	if k.shift.hinted || k.sym.hinted || k.cur.hinted {
		t.Fatalf("no modifier expected for plain base key")
	}
}

func TestKeyboardUpdateHintsModifiers(t *testing.T) {
	k := newKeyboard(layout.ThreeL, true)

	k.update('A', true)
	if !k.shift.hinted {
		t.Fatalf("expected shift hint for uppercase")
	}

	k.update('(', true)
	if k.shift.hinted {
		t.Fatalf("stale shift hint survived recompute")
	}
	if !k.sym.hinted {
		t.Fatalf("expected sym hint for parenthesis")
	}

	k.update('1', true)
	if k.sym.hinted {
		t.Fatalf("stale sym hint survived recompute")
	}
	if !k.cur.hinted {
		t.Fatalf("expected cur hint for digit")
	}
	cells := hintedCells(k)
	if len(cells) != 1 || cells[0].Row != 0 || cells[0].Col != 7 {
		t.Fatalf("expected digit hint at (0,7), got %v", cells)
	}
}

func TestKeyboardUpdateClearsOnNotFound(t *testing.T) {
	k := newKeyboard(layout.QWERTY, true)
	k.update('a', true)
	k.update('↩', true)
	if len(hintedCells(k)) != 0 || k.shift.hinted || k.sym.hinted || k.cur.hinted {
		t.Fatalf("expected no hints for unlocatable character")
	}
	k.update('a', true)
	k.update(0, false)
	if len(hintedCells(k)) != 0 {
		t.Fatalf("expected no hints at end of story")
	}
}

func TestKeyboardNextLayoutRebuilds(t *testing.T) {
	k := newKeyboard(layout.QWERTY, true)
	k.update('a', true)
	k.nextLayout()
	if k.id != layout.Dvorak {
		t.Fatalf("expected dvorak after qwerty, got %v", k.id)
	}
	if len(hintedCells(k)) != 0 {
		t.Fatalf("expected a fresh keyboard after layout switch")
	}
	k.nextLayout()
	k.nextLayout()
	if k.id != layout.QWERTY {
		t.Fatalf("expected cycle back to qwerty, got %v", k.id)
	}
}

func TestKeyboardToggle(t *testing.T) {
	k := newKeyboard(layout.QWERTY, true)
	k.toggle()
	if k.show {
		t.Fatalf("expected keyboard hidden after toggle")
	}
	k.nextLayout()
	if k.show {
		t.Fatalf("expected visibility to survive a layout switch")
	}
}

func TestPadCenter(t *testing.T) {
	if got := padCenter("a", 5); got != "  a  " {
		t.Fatalf("unexpected padding %q", got)
	}
	if got := padCenter("shift", 3); got != "shi" {
		t.Fatalf("expected truncation, got %q", got)
	}
}
