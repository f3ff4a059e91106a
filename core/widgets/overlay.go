package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup frames popup and centres it over base on a width x height
// canvas. Cells of base outside the frame are kept, styling included.
func RenderPopup(base, popup string, width, height int, border lipgloss.TerminalColor) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := strings.Split(base, "\n")
	canvas = append(canvas, make([]string, max(0, height-len(canvas)))...)[:height]
	for i, row := range canvas {
		canvas[i] = padRight(row, width)
	}

	frame := strings.Split(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MaxWidth(width).
		Render(popup), "\n")
	frameWidth := 0
	for _, l := range frame {
		frameWidth = max(frameWidth, ansi.StringWidth(l))
	}
	if frameWidth == 0 {
		return strings.Join(canvas, "\n")
	}

	x := max(0, (width-frameWidth)/2)
	y := max(0, (height-len(frame))/2)
	for i, l := range frame {
		row := y + i
		if row >= height {
			break
		}
		canvas[row] = splice(canvas[row], padRight(l, frameWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// splice writes over onto row starting at column x. row must already be
// padded to width.
func splice(row, over string, x, width int) string {
	left := padRight(ansi.Truncate(row, x, ""), x)
	end := x + ansi.StringWidth(over)
	right := strings.TrimPrefix(row, ansi.Truncate(row, end, ""))
	return padRight(left+over+right, width)
}
