package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/footprint/core/theme"
)

// Card is a small stat box: a caption, one large value and a note. The note
// wraps to the card width; explicit newlines start a new line.
type Card struct {
	Title   string
	Value   string
	Note    string
	Color   lipgloss.Color
	Palette theme.Palette
}

func (c Card) lines(width int) []string {
	lines := []string{Strong(c.Value, c.Color)}
	if c.Note == "" {
		return lines
	}
	wrapped := ansi.Wordwrap(c.Note, max(1, width-4), "")
	for _, l := range strings.Split(wrapped, "\n") {
		lines = append(lines, Muted(l, c.Palette))
	}
	return lines
}

// Height is the card's natural height at width, borders included.
func (c Card) Height(width int) int { return len(c.lines(width)) + 2 }

func (c Card) Render(width, height int) string {
	return c.pane(width, c.Height(width)).Render(width, height)
}

func (c Card) pane(width, h int) Pane {
	return Pane{
		Title:   c.Title,
		Content: strings.Join(c.lines(width), "\n"),
		Height:  h,
		Accent:  c.Color,
		Palette: c.Palette,
	}
}

// Cards is a row of equal-width cards, all as tall as the tallest one.
type Cards []Card

func CardRow(cards ...Card) Cards { return Cards(cards) }

const cardGap = 1

func (cs Cards) widths(width int) []int {
	return splitWidths(max(1, width-cardGap*(len(cs)-1)), len(cs), nil)
}

// Height is the row's natural height at width.
func (cs Cards) Height(width int) int {
	h := 0
	for i, w := range cs.widths(width) {
		h = max(h, cs[i].Height(max(1, w)))
	}
	return h
}

func (cs Cards) Render(width, height int) string {
	if len(cs) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	h := cs.Height(width)
	ws := make([]Widget, len(cs))
	for i, w := range cs.widths(width) {
		ws[i] = cs[i].pane(max(1, w), h)
	}
	return HStack{Widgets: ws, Gap: cardGap}.Render(width, min(h, height))
}
