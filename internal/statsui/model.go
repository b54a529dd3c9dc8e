// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taletype/taletype/internal/model"
	"github.com/taletype/taletype/internal/stats"
	"github.com/taletype/taletype/internal/store"
)

const (
	tabOverview = iota
	tabSessions
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	sessions []model.SessionAggregate
	errMsg   string

	tabs      []string
	activeTab int
	overview  viewport.Model
	sessTable table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tabs:  []string{"Overview", "Sessions"},
	}
	m.overview = viewport.New(0, 0)
	m.sessTable = newSessionTable(nil, 0, 1)
	m.refresh()
	return m
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
		m.updateLayout()
		m.renderOverview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		default:
			if m.activeTab == tabSessions {
				var cmd tea.Cmd
				m.sessTable, cmd = m.sessTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	var body string
	if m.activeTab == tabSessions {
		body = m.sessTable.View()
	} else {
		body = m.overview.View()
	}
	footer := footerStyle.Render("←/→ switch tab  q quit")
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg) + "\n" + footer
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) refresh() {
	sessions, err := m.store.ListSessions(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = "failed to load sessions: " + err.Error()
		return
	}
	if m.cfg.Last > 0 && len(sessions) > m.cfg.Last {
		sessions = sessions[len(sessions)-m.cfg.Last:]
	}
	m.sessions = sessions
	m.errMsg = ""
	m.rebuildTable()
	m.renderOverview()
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
	if m.activeTab == tabSessions {
		m.sessTable.Focus()
	} else {
		m.sessTable.Blur()
	}
}

func (m *Model) updateLayout() {
	bodyHeight := m.height - lipgloss.Height(m.renderHeader()) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.sessTable = newSessionTable(m.sessions, m.width, bodyHeight)
}

func (m *Model) rebuildTable() {
	height := m.sessTable.Height()
	if height < 1 {
		height = 1
	}
	m.sessTable = newSessionTable(m.sessions, m.width, height)
}

func (m *Model) renderOverview() {
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, m.sessions); err != nil {
		m.errMsg = "failed to render summary: " + err.Error()
		return
	}
	width := m.width - 12
	if width < 10 {
		width = 10
	}
	if err := stats.RenderSparkline(&buf, m.sessions, width); err != nil {
		m.errMsg = "failed to render sparkline: " + err.Error()
		return
	}
	m.overview.SetContent(buf.String())
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		style := inactiveNavStyle
		if i == m.activeTab {
			style = activeNavStyle
		}
		parts = append(parts, style.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func newSessionTable(sessions []model.SessionAggregate, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Story", Width: 24},
		{Title: "Layout", Width: 8},
		{Title: "Chars", Width: 7},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 9},
	}
	rows := make([]table.Row, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		rows = append(rows, table.Row(stats.SessionRow(sessions[i])))
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	if width > 0 {
		tbl.SetWidth(width)
	}
	return tbl
}
