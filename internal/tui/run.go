package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive check session and blocks until the user quits.
func Run(cfg Config) error {
	if cfg.Resolver == nil {
		return fmt.Errorf("resolver is required")
	}

	program := tea.NewProgram(newModel(cfg))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
