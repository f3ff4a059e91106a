package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m Model) string {
	p := m.Palette()
	st := newStyles(p)
	bindings := m.keys.HelpBindings(m.ActiveScope())
	space := st.footer.Render(" ")
	sep := st.footer.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		helpKey := b.HelpKey
		if helpKey == "" {
			helpKey = b.Keys[0]
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, st.footerKey.Render(h.Key)+space+st.footerDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = st.footerDesc.Render("No shortcuts")
	}
	return renderBar(st.footer, max(1, m.width), line, p.Mantle)
}

func RenderStatusBar(m Model) string {
	p := m.Palette()
	st := newStyles(p)
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(st.statusErr, max(1, m.width), "✗ "+msg, p.Surface0)
	}
	return renderBar(st.statusBar, max(1, m.width), msg, p.Surface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
