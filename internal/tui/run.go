package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the listen view and blocks until the user quits.
func Run(cfg Config) error {
	program := tea.NewProgram(New(cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("listen view failed: %w", err)
	}
	return nil
}
