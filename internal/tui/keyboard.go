package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taletype/taletype/internal/layout"
)

// keyTheme is the palette for one key face.
type keyTheme struct {
	text      lipgloss.Color
	bg        lipgloss.Color
	highlight lipgloss.Color
	shadow    lipgloss.Color
}

var (
	themeKeyBase = keyTheme{
		text:      lipgloss.Color("#101830"),
		bg:        lipgloss.Color("#304890"),
		highlight: lipgloss.Color("#4060C0"),
		shadow:    lipgloss.Color("#203060"),
	}
	themeKeyHint = keyTheme{
		text:      lipgloss.Color("#103010"),
		bg:        lipgloss.Color("#309030"),
		highlight: lipgloss.Color("#40C040"),
		shadow:    lipgloss.Color("#206020"),
	}
)

type keyCell struct {
	label  string
	hinted bool
}

// keyboard is the rendered key grid plus the modifier indicator row.
// It is rebuilt wholesale when the active layout changes.
type keyboard struct {
	id     layout.ID
	layout *layout.Layout
	show   bool

	keys  [][]keyCell
	cur   keyCell
	sym   keyCell
	shift keyCell
}

func newKeyboard(id layout.ID, show bool) *keyboard {
	lay := id.Layout()
	keys := make([][]keyCell, len(lay.Base))
	for rowI, row := range lay.Base {
		cells := make([]keyCell, len(row))
		for colI, r := range row {
			if r != layout.Empty {
				cells[colI].label = string(r)
			}
		}
		keys[rowI] = cells
	}
	return &keyboard{
		id:     id,
		layout: lay,
		show:   show,
		keys:   keys,
		cur:    keyCell{label: layout.ModCur.String()},
		sym:    keyCell{label: layout.ModSym.String()},
		shift:  keyCell{label: layout.ModShift.String()},
	}
}

func (k *keyboard) nextLayout() {
	*k = *newKeyboard(k.id.Next(), k.show)
}

func (k *keyboard) toggle() {
	k.show = !k.show
}

// update recomputes every key's hint state from the expected character.
// All keys reset to normal first so a stale hint never survives a cursor
// move or a layout switch.
func (k *keyboard) update(target rune, ok bool) {
	for rowI := range k.keys {
		for colI := range k.keys[rowI] {
			k.keys[rowI][colI].hinted = false
		}
	}
	k.cur.hinted = false
	k.sym.hinted = false
	k.shift.hinted = false
	if !ok {
		return
	}
	loc, found := k.layout.Locate(target)
	if !found {
		return
	}
	if loc.Row < len(k.keys) && loc.Col < len(k.keys[loc.Row]) {
		k.keys[loc.Row][loc.Col].hinted = true
	}
	switch loc.Modifier {
	case layout.ModCur:
		k.cur.hinted = true
	case layout.ModSym:
		k.sym.hinted = true
	case layout.ModShift:
		k.shift.hinted = true
	}
}

var (
	kbHeaderStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	kbInstructionsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	kbBorderStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// view renders the keyboard panel into the given area.
func (k *keyboard) view(width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	header := kbHeaderStyle.Render("Layout - " + k.layout.Name)
	instructions := kbInstructionsStyle.Render("Toggle Keyboard <C-h>  Next Layout <C-n>")

	// One line each for the header, instructions, and modifier row.
	gridHeight := innerHeight - 3
	rows := len(k.keys)
	cols := k.layout.Cols()
	rowHeight := 1
	if rows > 0 && gridHeight/rows > 1 {
		rowHeight = gridHeight / rows
		// Odd sizes leave a parity gap that reads as a key border.
		if rowHeight%2 == 0 {
			rowHeight--
		}
	}
	colWidth := 1
	if cols > 0 && innerWidth/cols > 1 {
		colWidth = innerWidth / cols
		if colWidth%2 == 0 {
			colWidth--
		}
	}

	rendered := make([]string, 0, rows+3)
	rendered = append(rendered, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, header))
	for _, row := range k.keys {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, renderKey(cell.label, cell.hinted, colWidth, rowHeight))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		rendered = append(rendered, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, line))
	}
	modifiers := lipgloss.JoinHorizontal(lipgloss.Top,
		renderKey(k.cur.label, k.cur.hinted, runewidth.StringWidth(k.cur.label)+2, 1),
		renderKey(k.sym.label, k.sym.hinted, runewidth.StringWidth(k.sym.label)+2, 1),
		renderKey(k.shift.label, k.shift.hinted, runewidth.StringWidth(k.shift.label)+2, 1),
	)
	rendered = append(rendered, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, modifiers))
	rendered = append(rendered, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, instructions))

	body := lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rendered...))
	return kbBorderStyle.Render(body)
}

// renderKey draws one beveled key face: a highlight line on top, a
// shadow line underneath, and the label centered between them.
func renderKey(label string, hinted bool, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	theme := themeKeyBase
	if hinted {
		theme = themeKeyHint
	}
	faceStyle := lipgloss.NewStyle().Background(theme.bg).Foreground(theme.text)
	labelStyle := lipgloss.NewStyle().Background(theme.bg).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	topStyle := lipgloss.NewStyle().Background(theme.bg).Foreground(theme.highlight)
	shadowStyle := lipgloss.NewStyle().Background(theme.bg).Foreground(theme.shadow)

	labelRow := (height - 1) / 2
	blank := strings.Repeat(" ", width)
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		switch {
		case i == labelRow:
			lines = append(lines, labelStyle.Render(padCenter(label, width)))
		case i == 0 && height > 2:
			lines = append(lines, topStyle.Render(blank))
		case i == height-1 && height > 1:
			lines = append(lines, shadowStyle.Render(strings.Repeat("▁", width)))
		default:
			lines = append(lines, faceStyle.Render(blank))
		}
	}
	return strings.Join(lines, "\n")
}

func padCenter(label string, width int) string {
	labelWidth := runewidth.StringWidth(label)
	if labelWidth >= width {
		return runewidth.Truncate(label, width, "")
	}
	left := (width - labelWidth) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-labelWidth-left)
}
