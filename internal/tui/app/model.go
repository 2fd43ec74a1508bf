package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts App to bubbletea. Ctrl+C, Ctrl+E and Ctrl+L are handled here
// before the key reaches the controller.
type Model struct {
	app *App
}

func NewModel(a *App) Model {
	return Model{app: a}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.app.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.app.keys.forceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.app.keys.editFromSearch):
			m.app.EditFromSearch()
			return m, nil
		case key.Matches(msg, m.app.keys.noLinkShortcut):
			m.app.ToggleNoLinkFilter()
			return m, nil
		}

		if m.app.HandleKey(msg) {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	return m.app.View()
}

// Run blocks until the user quits.
func Run(a *App) error {
	if _, err := tea.NewProgram(NewModel(a), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running binder manager: %w", err)
	}
	return nil
}
