package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/footprint/core/theme"
)

// Pane is a rounded box with its title set into the top border. Content
// scrolls by Offset lines; rows past the box are clipped.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Offset   int
	Selected bool
	Focused  bool
	// Accent overrides the border color when set.
	Accent  lipgloss.Color
	Palette theme.Palette
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h := height
	if p.Height > 0 && p.Height < h {
		h = p.Height
	}
	if width < 4 {
		width = 4
	}
	if h < 3 {
		h = 3
	}

	border := p.Palette.Border
	switch {
	case p.Focused:
		border = p.Palette.Success
	case p.Selected:
		border = p.Palette.Focus
	case p.Accent != "":
		border = p.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(p.Palette.Text).Bold(true)

	titlePrefix := ""
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	offset := clampOffset(p.Offset, len(contentLines), innerHeight)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if idx := offset + i; idx < len(contentLines) {
			line = contentLines[idx]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	bottom := strings.Repeat("─", innerWidth)
	if offset+innerHeight < len(contentLines) && innerWidth > 3 {
		bottom = strings.Repeat("─", innerWidth-3) + " ↓ "
	}
	rows = append(rows, borderStyle.Render("╰"+bottom+"╯"))

	return strings.Join(rows, "\n")
}

// clampOffset keeps the scroll window inside the content.
func clampOffset(offset, total, visible int) int {
	if offset > total-visible {
		offset = total - visible
	}
	return max(0, offset)
}

// ScrollTo returns the smallest offset change that keeps line visible in a
// window of height rows starting at offset.
func ScrollTo(offset, line, height int) int {
	if height <= 0 {
		return offset
	}
	if line < offset {
		return line
	}
	if line >= offset+height {
		return line - height + 1
	}
	return offset
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
