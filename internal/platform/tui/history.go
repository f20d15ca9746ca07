package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridlab/internal/storage"
)

const maxHistoryRuns = 100

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store    *storage.Store
	pattern  string // Empty = all patterns
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	detail   *storage.Run // Run whose final board is shown
	err      error
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history screen for one pattern, or all if pattern is empty.
func NewHistoryModel(store *storage.Store, pattern string, width, height int) HistoryModel {
	m := HistoryModel{
		store:   store,
		pattern: pattern,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Pattern", Width: 20},
		{Title: "Rule", Width: 16},
		{Title: "Steps", Width: 7},
		{Title: "Live", Width: 6},
		{Title: "Settled", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
	} else if m.pattern == "" {
		m.runs, m.err = m.store.RecentRuns(maxHistoryRuns)
	} else {
		m.runs, m.err = m.store.RunsForPattern(m.pattern, maxHistoryRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		settled := "no"
		if r.Converged {
			settled = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.PatternID,
			r.RuleID,
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Live),
			settled,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				m.detail = &m.runs[i]
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the run whose board is being shown, if any.
func (m HistoryModel) Selected() *storage.Run {
	return m.detail
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "RUN HISTORY"
	if m.pattern != "" {
		title = fmt.Sprintf("RUN HISTORY - %s", m.pattern)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render(fmt.Sprintf("Could not load runs: %v", m.err)))
	case m.detail != nil:
		r := m.detail
		b.WriteString(fmt.Sprintf("#%d %s / %s: %d steps, %d live\n", r.ID, r.PatternID, r.RuleID, r.Steps, r.Live))
		b.WriteString(boxStyle.Render(r.Board))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No runs recorded yet.\nRun a pattern to record one!"))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history screen in the current terminal.
func RunHistory(store *storage.Store, pattern string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, pattern, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
