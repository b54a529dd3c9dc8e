// Package stats contains statistics calculations and reporting.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one column of the session table.
type column struct {
	title      string
	rightAlign bool
}

// renderColumns lays out rows under the column titles. Cell widths use
// terminal display width, not rune count, so glyph labels like the
// return mark and CJK story names stay aligned.
func renderColumns(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i >= len(row) {
				continue
			}
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(cols, header, widths))
	for _, row := range rows {
		lines = append(lines, renderRow(cols, row, widths))
	}
	return lines
}

func renderRow(cols []column, row []string, widths []int) string {
	var b strings.Builder
	for i := range cols {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(alignCell(cell, widths[i], cols[i].rightAlign))
	}
	return b.String()
}

func alignCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
