package layout

import "testing"

func allLayouts() []*Layout {
	return []*Layout{QWERTY.Layout(), Dvorak.Layout(), ThreeL.Layout()}
}

func gridFor(l *Layout, mod Modifier) []Row {
	switch mod {
	case ModSym:
		return l.Sym
	case ModCur:
		return l.Cur
	default:
		return l.Base
	}
}

func TestLocateRoundTrip(t *testing.T) {
	for _, l := range allLayouts() {
		for _, grid := range [][]Row{l.Base, l.Sym, l.Cur} {
			for _, row := range grid {
				for _, r := range row {
					if r == Empty {
						continue
					}
					loc, ok := l.Locate(r)
					if !ok {
						t.Fatalf("%s: %q not located", l.Name, r)
					}
					if loc.Modifier == ModShift {
						t.Fatalf("%s: %q is on a layer but resolved via shift", l.Name, r)
					}
					col := loc.Col
					if loc.Modifier == ModCur {
						col -= l.CurOffset
					}
					back := gridFor(l, loc.Modifier)[loc.Row][col]
					if back != r {
						t.Fatalf("%s: %q located at (%d,%d) but grid holds %q", l.Name, r, loc.Row, loc.Col, back)
					}
				}
			}
		}
	}
}

func TestLocateShiftedBase(t *testing.T) {
	for _, l := range allLayouts() {
		verbatim := map[rune]struct{}{}
		for _, grid := range [][]Row{l.Base, l.Sym, l.Cur} {
			for _, row := range grid {
				for _, r := range row {
					verbatim[r] = struct{}{}
				}
			}
		}
		for _, row := range l.Base {
			for _, r := range row {
				if r == Empty {
					continue
				}
				shifted := Shift(r)
				if _, taken := verbatim[shifted]; taken {
					// Resolves on a layer first by precedence.
					continue
				}
				base, ok := l.Locate(r)
				if !ok {
					t.Fatalf("%s: %q not located", l.Name, r)
				}
				loc, ok := l.Locate(shifted)
				if !ok {
					t.Fatalf("%s: shifted %q not located", l.Name, shifted)
				}
				if loc.Modifier != ModShift {
					t.Fatalf("%s: %q resolved with modifier %v, want shift", l.Name, shifted, loc.Modifier)
				}
				if loc.Row != base.Row || loc.Col != base.Col {
					t.Fatalf("%s: %q at (%d,%d), base %q at (%d,%d)", l.Name, shifted, loc.Row, loc.Col, r, base.Row, base.Col)
				}
			}
		}
	}
}

func TestLocateSymWinsOverShift(t *testing.T) {
	// ':' is both on the 3l sym layer and the shift of base ';'.
	loc, ok := ThreeL.Layout().Locate(':')
	if !ok {
		t.Fatalf("expected ':' to be located")
	}
	if loc.Modifier != ModSym {
		t.Fatalf("expected sym modifier, got %v", loc.Modifier)
	}
}

func TestLocateCurOffset(t *testing.T) {
	loc, ok := ThreeL.Layout().Locate('1')
	if !ok {
		t.Fatalf("expected '1' to be located")
	}
	if loc.Modifier != ModCur {
		t.Fatalf("expected cur modifier, got %v", loc.Modifier)
	}
	if loc.Row != 0 || loc.Col != 7 {
		t.Fatalf("expected (0,7), got (%d,%d)", loc.Row, loc.Col)
	}
}

func TestLocateNeverMatchesEmptyCell(t *testing.T) {
	for _, l := range allLayouts() {
		if _, ok := l.Locate(Empty); ok {
			t.Fatalf("%s: sentinel cell located", l.Name)
		}
	}
}

func TestLocateNotFound(t *testing.T) {
	for _, r := range []rune{'↩', '\t', 'é'} {
		if _, ok := QWERTY.Layout().Locate(r); ok {
			t.Fatalf("expected %q to be unlocatable", r)
		}
	}
}

func TestShiftTable(t *testing.T) {
	cases := map[rune]rune{
		'a': 'A', '1': '!', ';': ':', '\'': '"', '/': '?', '\\': '|', '-': '_', '`': '~',
	}
	for in, want := range cases {
		if got := Shift(in); got != want {
			t.Fatalf("Shift(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNextIsCyclic(t *testing.T) {
	if QWERTY.Next() != Dvorak || Dvorak.Next() != ThreeL || ThreeL.Next() != QWERTY {
		t.Fatalf("layout cycle broken")
	}
}

func TestParseID(t *testing.T) {
	for _, name := range Names() {
		id, ok := ParseID(name)
		if !ok {
			t.Fatalf("expected %q to parse", name)
		}
		if got, _ := ParseID(name); got != id {
			t.Fatalf("unstable parse for %q", name)
		}
	}
	if _, ok := ParseID("colemak"); ok {
		t.Fatalf("expected unknown layout to be rejected")
	}
}
