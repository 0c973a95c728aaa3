package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mixguard/mixguard/internal/model"
)

// LevelColor maps a safety level to its display color. Unknown gets a
// neutral caution color; it is a first-class displayable state, not an
// error state.
func LevelColor(level model.SafetyLevel) lipgloss.Color {
	switch level {
	case model.LevelSafe:
		return lipgloss.Color("42")
	case model.LevelMild:
		return lipgloss.Color("114")
	case model.LevelExothermic:
		return lipgloss.Color("214")
	case model.LevelDangerous:
		return lipgloss.Color("196")
	case model.LevelExtreme:
		return lipgloss.Color("201")
	default:
		return lipgloss.Color("245")
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// levelBadge renders a safety level in its display color.
func levelBadge(level model.SafetyLevel) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(LevelColor(level)).
		Render(string(level))
}
