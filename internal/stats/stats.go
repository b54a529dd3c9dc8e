// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/taletype/taletype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Summary aggregates a session list for reporting.
type Summary struct {
	Sessions   int
	Chars      int
	AvgWPM     float64
	BestWPM    float64
	AvgCPM     float64
	AvgAcc     float64
	TotalMs    int64
	WPMHistory []float64
}

// Summarize computes summary numbers over the sessions.
func Summarize(sessions []model.SessionAggregate) Summary {
	sum := Summary{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return sum
	}
	var totalWPM, totalCPM, totalAcc float64
	sum.WPMHistory = make([]float64, len(sessions))
	for i, s := range sessions {
		wpm, cpm, acc := SessionMetrics(s.Correct, s.Incorrect, s.DurationMs)
		totalWPM += wpm
		totalCPM += cpm
		totalAcc += acc
		if wpm > sum.BestWPM {
			sum.BestWPM = wpm
		}
		sum.Chars += s.Chars
		sum.TotalMs += s.DurationMs
		sum.WPMHistory[i] = wpm
	}
	count := float64(len(sessions))
	sum.AvgWPM = totalWPM / count
	sum.AvgCPM = totalCPM / count
	sum.AvgAcc = totalAcc / count
	return sum
}

// RenderSummary prints a summary block for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	sum := Summarize(sessions)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", sum.Sessions),
		fmt.Sprintf("Story chars typed: %d", sum.Chars),
		fmt.Sprintf("Avg WPM: %.2f", sum.AvgWPM),
		fmt.Sprintf("Best WPM: %.2f", sum.BestWPM),
		fmt.Sprintf("Avg CPM: %.2f", sum.AvgCPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", sum.AvgAcc*100),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// sparkWindow smooths the WPM trend over a few sessions.
const sparkWindow = 3

// RenderSparkline prints the WPM trend sized to the terminal width.
func RenderSparkline(w io.Writer, sessions []model.SessionAggregate, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	sum := Summarize(sessions)
	history := MovingAverage(sum.WPMHistory, sparkWindow)
	if width > 0 && len(history) > width {
		history = history[len(history)-width:]
	}
	if _, err := fmt.Fprintf(w, "WPM trend: %s\n\n", Sparkline(history)); err != nil {
		return err
	}
	return nil
}

var sessionColumns = []column{
	{title: "Ended"},
	{title: "Story"},
	{title: "Layout"},
	{title: "Chars", rightAlign: true},
	{title: "WPM", rightAlign: true},
	{title: "Accuracy", rightAlign: true},
}

// RenderSessionTable prints the per-session table.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, SessionRow(s))
	}
	for _, line := range renderColumns(sessionColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// SessionRow formats one session for tabular output.
func SessionRow(s model.SessionAggregate) []string {
	wpm, _, acc := SessionMetrics(s.Correct, s.Incorrect, s.DurationMs)
	return []string{
		s.EndedAt.Format("2006-01-02 15:04"),
		filepath.Base(s.StoryPath),
		s.Layout,
		fmt.Sprintf("%d", s.Chars),
		fmt.Sprintf("%.1f", wpm),
		fmt.Sprintf("%.1f%%", acc*100),
	}
}
