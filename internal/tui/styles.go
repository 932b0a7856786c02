package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles bundles the lipgloss styles used by the calculator form.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Result lipgloss.Style
	Detail lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Box    lipgloss.Style
}

// DefaultStyles picks a palette readable on the detected terminal
// background.
func DefaultStyles() Styles {
	neutral := lipgloss.Color("#626262")
	if !termenv.HasDarkBackground() {
		neutral = lipgloss.Color("#8A8A8A")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),

		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Detail: lipgloss.NewStyle().
			Foreground(neutral),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(neutral),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neutral).
			Padding(0, 1),
	}
}
