package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/backcast/internal/plan"
)

// Start runs the step browser over a loaded plan. path is where status
// changes are saved back to.
func Start(p plan.Plan, path string) error {
	program := tea.NewProgram(NewModel(p, path), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
