package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive shell and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive shell failed: %w", err)
	}
	return nil
}
