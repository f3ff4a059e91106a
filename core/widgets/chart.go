package widgets

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/footprint/core/theme"
)

// BarPoint is one horizontal bar.
type BarPoint struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart draws labelled horizontal bars with ntcharts.
type BarChart struct {
	Bars    []BarPoint
	Palette theme.Palette
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Bars) == 0 {
		return Muted("(no data)", c.Palette)
	}
	labelW := 0
	for _, b := range c.Bars {
		labelW = max(labelW, len(b.Label))
	}
	// One row per bar plus the axis; ntcharts needs room for labels and bars.
	rows := min(height, len(c.Bars)+1)
	if width < labelW+4 || rows < 2 {
		return Text(c.fallback()).Render(width, height)
	}

	data := make([]barchart.BarData, 0, len(c.Bars))
	for _, b := range c.Bars {
		data = append(data, barchart.BarData{
			Label: b.Label,
			Values: []barchart.BarValue{{
				Name:  b.Label,
				Value: b.Value,
				Style: lipgloss.NewStyle().Foreground(b.Color),
			}},
		})
	}
	chart := barchart.New(width, rows,
		barchart.WithHorizontalBars(),
		barchart.WithBarGap(0),
		barchart.WithStyles(
			lipgloss.NewStyle().Foreground(c.Palette.Border),
			lipgloss.NewStyle().Foreground(c.Palette.Subtext),
		),
	)
	chart.PushAll(data)
	chart.Draw()
	return chart.View()
}

func (c BarChart) fallback() string {
	lines := make([]string, 0, len(c.Bars))
	for _, b := range c.Bars {
		lines = append(lines, Colored(b.Label, b.Color))
	}
	return strings.Join(lines, "\n")
}
