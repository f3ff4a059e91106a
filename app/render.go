package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/footprint/core/theme"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

func riskColor(r dataset.RiskLevel, p theme.Palette) lipgloss.Color {
	switch r {
	case dataset.RiskHigh:
		return p.Error
	case dataset.RiskMedium:
		return p.Warning
	default:
		return p.Success
	}
}

func exposureStatusColor(s dataset.ExposureStatus, p theme.Palette) lipgloss.Color {
	switch s {
	case dataset.StatusCloaked:
		return p.Success
	case dataset.StatusPending:
		return p.Warning
	default:
		return p.Error
	}
}

func vaultStatusColor(s dataset.VaultStatus, p theme.Palette) lipgloss.Color {
	switch s {
	case dataset.VaultEncrypted:
		return p.Success
	case dataset.VaultLocal:
		return p.Info
	default:
		return p.Warning
	}
}

func categoryStatusColor(s dataset.CategoryStatus, p theme.Palette) lipgloss.Color {
	switch s {
	case dataset.CategoryShared:
		return p.Money
	case dataset.CategoryMonetizable:
		return p.Warning
	default:
		return p.Success
	}
}

// typeGlyph stands in for the thumbnail when a row has none.
func typeGlyph(t dataset.ExposureType) string {
	switch t {
	case dataset.TypeImage:
		return "▣"
	case dataset.TypeVoice:
		return "♪"
	case dataset.TypeLocation:
		return "⌖"
	default:
		return "¶"
	}
}

// spread puts left and right on one line of width, right-aligned.
func spread(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// wrap breaks s into lines no wider than width, on word boundaries.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(s), "\n")
}

// toggleLines renders a read-only switch list: title and switch on one line,
// the description muted beneath.
func toggleLines(toggles []dataset.Toggle, width int, p theme.Palette) []string {
	lines := make([]string, 0, len(toggles)*2)
	for _, t := range toggles {
		lines = append(lines,
			spread(widgets.Strong(t.Title, p.Text), widgets.Switch(t.Enabled, p), width),
			widgets.Muted("  "+t.Description, p),
		)
	}
	return lines
}

func dollars(n int) string { return fmt.Sprintf("$%d", n) }

// paneLines wraps lines in a pane sized to fit them exactly.
func paneLines(title string, lines []string, accent lipgloss.Color, p theme.Palette) widgets.Pane {
	return widgets.Pane{
		Title:   title,
		Content: strings.Join(lines, "\n"),
		Height:  len(lines) + 2,
		Accent:  accent,
		Palette: p,
	}
}

// column stacks blocks at their natural heights and scrolls the result by
// offset lines. Panels taller than the terminal use it instead of ratios.
// When focus is set, the offset is adjusted so that block stays in view.
type column struct {
	blocks []func(width int) string
	offset *int
	focus  int
}

func newColumn(offset *int, blocks ...func(int) string) column {
	return column{blocks: blocks, offset: offset, focus: -1}
}

func (c column) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	stack := widgets.VStack{Spacing: 1}
	total := 0
	focusStart, focusEnd := -1, -1
	for i, b := range c.blocks {
		out := b(width)
		h := strings.Count(out, "\n") + 1
		if i > 0 {
			total++
		}
		if i == c.focus {
			focusStart, focusEnd = total, total+h-1
		}
		total += h
		stack.Widgets = append(stack.Widgets, widgets.Text(out))
		stack.Heights = append(stack.Heights, h)
	}
	lines := strings.Split(stack.Render(width, total), "\n")
	off := 0
	if c.offset != nil {
		off = *c.offset
		if focusStart >= 0 {
			off = widgets.ScrollTo(off, focusEnd, height)
			off = widgets.ScrollTo(off, focusStart, height)
		}
		off = clamp(off, 0, max(0, len(lines)-height))
		*c.offset = off
	}
	lines = lines[off:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return widgets.Text(strings.Join(lines, "\n")).Render(width, height)
}

// cardBlock renders a card row at its natural height.
func cardBlock(cards widgets.Cards) func(int) string {
	return func(width int) string { return cards.Render(width, cards.Height(width)) }
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
