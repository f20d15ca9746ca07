package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/patterns"
	"github.com/vovakirdan/gridlab/internal/storage"
)

const (
	minTickRate = 1
	maxTickRate = 60
)

// SimOptions configures a SimModel.
type SimOptions struct {
	TickRate int            // Generations per second
	MaxSteps int            // Stop after this many generations; 0 = until settled
	Palette  Palette        // Tile styles; nil renders plain glyphs
	Store    *storage.Store // Optional; receives one run record when the simulation ends
	Logger   *log.Logger    // Optional
}

// SimModel is the Bubble Tea model that animates a rule on a pattern.
type SimModel struct {
	pattern  patterns.Pattern
	stepper  *automaton.Stepper
	opts     SimOptions
	keys     SimKeyMap
	help     help.Model
	paused   bool
	saved    bool
	width    int
	height   int
	quitting bool
}

// NewSimModel creates a viewer for rule running on board.
func NewSimModel(p patterns.Pattern, rule automaton.Rule, board *automaton.Board, opts SimOptions) SimModel {
	if opts.TickRate < minTickRate {
		opts.TickRate = minTickRate
	}
	if opts.TickRate > maxTickRate {
		opts.TickRate = maxTickRate
	}
	return SimModel{
		pattern: p,
		stepper: automaton.NewStepper(rule, board),
		opts:    opts,
		keys:    DefaultSimKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m SimModel) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.opts.TickRate)
	}
	return m, nil
}

func (m SimModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.advance()
	case key.Matches(msg, m.keys.Reset):
		m.stepper.Reset()
		m.saved = false
	case key.Matches(msg, m.keys.Faster):
		m.opts.TickRate = min(m.opts.TickRate*2, maxTickRate)
	case key.Matches(msg, m.keys.Slower):
		m.opts.TickRate = max(m.opts.TickRate/2, minTickRate)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// advance steps once unless the run is over, and records the run when it ends.
func (m *SimModel) advance() {
	if m.Done() {
		return
	}
	m.stepper.Step()
	if m.Done() {
		m.record()
	}
}

func (m *SimModel) record() {
	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true

	b := m.stepper.Board()
	run := storage.Run{
		PatternID: m.pattern.ID,
		RuleID:    m.stepper.Rule().ID(),
		Steps:     m.stepper.Generation(),
		Converged: m.stepper.Settled(),
		Live:      b.CountData(automaton.Full),
		Width:     b.Width(),
		Height:    b.Height(),
		Board:     b.String(),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save run", "pattern", run.PatternID, "error", err)
	}
}

// Done returns true once the board settled or the step limit was reached.
func (m SimModel) Done() bool {
	if m.stepper.Settled() {
		return true
	}
	return m.opts.MaxSteps > 0 && m.stepper.Generation() >= m.opts.MaxSteps
}

// Paused returns true while automatic stepping is suspended.
func (m SimModel) Paused() bool {
	return m.paused
}

// Generation returns the number of generations shown so far.
func (m SimModel) Generation() int {
	return m.stepper.Generation()
}

// TickRate returns the current generations per second.
func (m SimModel) TickRate() int {
	return m.opts.TickRate
}

// View renders the viewer.
func (m SimModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s - %s", m.pattern.Name, m.stepper.Rule().Title())))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(RenderBoard(m.stepper.Board(), m.opts.Palette)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m SimModel) status() string {
	state := "running"
	switch {
	case m.stepper.Settled():
		state = "settled"
	case m.Done():
		state = "step limit"
	case m.paused:
		state = "paused"
	}
	board := m.stepper.Board()
	return fmt.Sprintf("gen %d  live %d  %dx%d  %d/s  [%s]",
		m.stepper.Generation(),
		board.CountData(automaton.Full),
		board.Width(), board.Height(),
		m.opts.TickRate,
		state,
	)
}

// RunSim runs the viewer in the current terminal.
func RunSim(m SimModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
