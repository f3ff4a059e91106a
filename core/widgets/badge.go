package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/footprint/core/theme"
)

// Badge is a short inverse-video label such as a status or risk tag.
func Badge(text string, color lipgloss.Color, p theme.Palette) string {
	return lipgloss.NewStyle().
		Foreground(p.Base).
		Background(color).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// Switch draws a read-only on/off toggle.
func Switch(on bool, p theme.Palette) string {
	if on {
		return lipgloss.NewStyle().Foreground(p.Success).Render("[━●]") +
			lipgloss.NewStyle().Foreground(p.Success).Bold(true).Render(" on ")
	}
	return lipgloss.NewStyle().Foreground(p.Muted).Render("[○━]") +
		lipgloss.NewStyle().Foreground(p.Muted).Render(" off")
}

// Heading is bold accent text used for section titles inside panes.
func Heading(text string, p theme.Palette) string {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(text)
}

// Muted renders secondary text.
func Muted(text string, p theme.Palette) string {
	return lipgloss.NewStyle().Foreground(p.Muted).Render(text)
}

// Colored renders text in color.
func Colored(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Strong renders bold text in color.
func Strong(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
}
