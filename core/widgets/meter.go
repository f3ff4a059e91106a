package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/footprint/core/theme"
)

// Meter renders "Label  ██████░░░░  55%" sized to the given width.
func Meter(label string, percent, width int, fill lipgloss.Color, p theme.Palette) string {
	percent = min(100, max(0, percent))
	value := fmt.Sprintf("%3d%%", percent)
	if label != "" {
		label += "  "
	}
	barWidth := width - ansi.StringWidth(label) - ansi.StringWidth(value) - 1
	if barWidth < 4 {
		return padRight(label+value, width)
	}
	return lipgloss.NewStyle().Foreground(p.Subtext).Render(label) +
		Bar(percent, barWidth, fill, p) + " " +
		lipgloss.NewStyle().Foreground(fill).Bold(true).Render(value)
}

// Bar is a bare progress bar with no percentage text.
func Bar(percent, width int, fill lipgloss.Color, p theme.Palette) string {
	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(max(1, width)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(p.Surface1)
	return bar.ViewAs(float64(min(100, max(0, percent))) / 100)
}
