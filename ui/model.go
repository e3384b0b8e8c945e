package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// Model is the Bubbletea model for the terminal visualizer. Each tick takes
// one window from the renderer; View only redraws it.
type Model struct {
	renderer *Renderer
	grid     *Grid
	interval time.Duration
	quitting bool
}

// NewModel creates a Model ticking fps times per second.
func NewModel(r *Renderer, fps int) Model {
	l := r.Layout()
	return Model{
		renderer: r,
		grid:     NewGrid(l.Width, l.Height),
		interval: time.Second / time.Duration(max(fps, 1)),
	}
}

// Init starts the tick timer and requests the terminal size.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), tea.WindowSize())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses, ticks and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height)

	case tickMsg:
		m.renderer.Advance()
		return m, m.tick()
	}

	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.grid)
	return m.grid.String()
}

// RunTerminal runs the visualizer full screen until the user quits.
func RunTerminal(r *Renderer, fps int) error {
	prog := tea.NewProgram(NewModel(r, fps), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
