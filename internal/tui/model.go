// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taletype/taletype/internal/layout"
	"github.com/taletype/taletype/internal/model"
	"github.com/taletype/taletype/internal/story"
)

var (
	prefixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	suffixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#40C040")).Bold(true)
	storyBorder  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	story  *story.Story

	cursor      int
	startCursor int
	keyboard    *keyboard

	width  int
	height int

	started   bool
	startedAt time.Time
	correct   int
	incorrect int

	finished bool
}

// NewModel constructs a typing TUI model.
func NewModel(cfg model.Config, st *story.Story, layoutID layout.ID, cursor int) *Model {
	return &Model{
		config:      cfg,
		story:       st,
		cursor:      cursor,
		startCursor: cursor,
		keyboard:    newKeyboard(layoutID, cfg.ShowKeyboard),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.finished = true
			return m, tea.Quit
		case tea.KeyCtrlN:
			m.keyboard.nextLayout()
			return m, nil
		case tea.KeyCtrlH:
			m.keyboard.toggle()
			return m, nil
		case tea.KeyEnter:
			if next, ok := m.story.Next(m.cursor); ok {
				m.grade(story.Return, next)
			}
			return m, nil
		case tea.KeyTab:
			// A shortcut key, not a graded keystroke.
			if _, ok := m.story.Next(m.cursor); ok {
				m.cursor++
			}
			return m, nil
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		next, ok := m.story.Next(m.cursor)
		if !ok {
			return
		}
		m.grade(r, next)
	}
}

func (m *Model) grade(typed, expected rune) {
	if !m.started {
		m.started = true
		m.startedAt = time.Now()
	}
	if typed == expected {
		m.correct++
		m.cursor++
		return
	}
	m.incorrect++
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	// Hint state is recomputed from scratch once per frame.
	next, hasNext := m.story.Next(m.cursor)
	m.keyboard.update(next, hasNext)

	if !m.keyboard.show {
		return m.viewStory(m.width, m.height)
	}
	kbHeight := m.height / 3
	if kbHeight < 3 {
		return m.viewStory(m.width, m.height)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewStory(m.width, m.height-kbHeight),
		m.keyboard.view(m.width, kbHeight),
	)
}

func (m *Model) viewStory(width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}
	title := titleStyle.Render("Story")
	footer := footerStyle.Render("Skip <Tab>  Exit <Esc>")

	var line string
	if _, ok := m.story.Next(m.cursor); !ok && m.story.Len() > 0 {
		line = doneStyle.Render("The story is complete.")
	} else {
		w := windowAround(m.story.Runes(), m.cursor, innerWidth)
		var b strings.Builder
		b.WriteString(prefixStyle.Render(string(w.prefix)))
		b.WriteString(currentStyle.Render(string(w.current)))
		b.WriteString(suffixStyle.Render(string(w.suffix)))
		line = b.String()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, title),
		lipgloss.Place(innerWidth, innerHeight-2, lipgloss.Center, lipgloss.Center, line),
		lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, footer),
	)
	return storyBorder.Render(body)
}

// Cursor returns the current read offset.
func (m *Model) Cursor() int {
	return m.cursor
}

// Finished reports whether the session ended through the save path.
func (m *Model) Finished() bool {
	return m.finished
}

// Session returns the keystroke record for the run, or false when no
// graded keystroke was seen.
func (m *Model) Session() (model.SessionStats, bool) {
	if !m.started {
		return model.SessionStats{}, false
	}
	endedAt := time.Now()
	return model.SessionStats{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		StoryPath:  m.config.StoryPath,
		Layout:     m.keyboard.layout.Name,
		CharsStart: m.startCursor,
		CharsEnd:   m.cursor,
		Correct:    m.correct,
		Incorrect:  m.incorrect,
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}, true
}
