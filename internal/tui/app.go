// Package tui provides the interactive scenario builder for bts.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/btslang/bts/internal/tui/views"
)

// Launch starts the builder program.
func Launch() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running builder: %w", err)
	}
	return nil
}

// Model hosts the active view.
type Model struct {
	view View
}

// NewModel creates the application model.
func NewModel() Model {
	return Model{
		view: views.NewBuilderView(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.view.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View renders the current view.
func (m Model) View() string {
	return m.view.View()
}

// View represents a TUI view (exported from views package).
type View = views.View
