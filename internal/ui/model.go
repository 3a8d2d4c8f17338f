package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/eqviz/internal/engine"
	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/olivier-w/eqviz/internal/visualizer"
)

// Model is the Bubbletea model for the eqviz TUI. Every engine call happens
// inside Update, so the engine is only ever touched by one goroutine.
type Model struct {
	engine   *engine.Engine
	addr     string
	grid     *visualizer.Grid
	spinner  spinner.Model
	interval time.Duration
	width    int
	height   int
	quitting bool
	err      error
}

// New creates a Model driving e. addr is shown while waiting for frames.
func New(e *engine.Engine, addr string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return Model{
		engine:   e,
		addr:     addr,
		grid:     visualizer.NewGrid(0, 0),
		spinner:  s,
		interval: engine.FrameInterval(e.FPS()),
	}
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(0), m.spinner.Tick, tea.SetWindowTitle("eqviz"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			m.engine.Quit()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.Resize(m.gridRows(), m.width)
		return m, nil

	case spinner.TickMsg:
		if m.engine.State() != engine.Waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		start := time.Now()
		if err := m.engine.Step(start); err != nil {
			m.quitting = true
			m.err = errors.WrapWithCode(err, errors.ErrNetwork,
				"Lost the UDP socket",
				"The listening socket was closed while running")
			return m, tea.Quit
		}
		m.grid.Clear()
		m.engine.Draw(m.grid)
		return m, tickCmd(engine.Pace(m.interval, time.Since(start)))
	}

	return m, nil
}

// gridRows leaves the last line for the status bar when there is room.
func (m Model) gridRows() int {
	if m.height > 4 {
		return m.height - 1
	}
	return m.height
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.engine.State() == engine.Waiting {
		var b strings.Builder
		b.WriteString("\n  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(waitingStyle.Render(visualizer.WaitingText(m.addr)))
		b.WriteString("\n")
		if m.engine.Reminding() {
			b.WriteString("\n  ")
			b.WriteString(reminderStyle.Render(visualizer.ReminderText))
			b.WriteString("\n")
		}
		return b.String()
	}

	view := barStyle.Render(m.grid.String())
	if m.gridRows() < m.height {
		// Pad so the status bar sits on the bottom line.
		if pad := m.gridRows() - lipgloss.Height(view); pad > 0 {
			view += strings.Repeat("\n", pad)
		}
		status := renderStatusLine(m.engine.Stats(), m.engine.BandCount(), m.engine.FPS(), time.Now())
		view += "\n" + statusStyle.Render(truncate(status, m.width))
	}
	return view
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width])
}
