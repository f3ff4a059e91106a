package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/footprint/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	body := m.RenderBody(max(1, m.width-2), bodyHeight)
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, min(72, m.width-12)), max(8, bodyHeight-6))
		body = widgets.RenderPopup(body, popup, m.width-2, bodyHeight, m.Palette().Accent)
	}
	body = fitHeight(indent(body, 1), bodyHeight)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+bodyHeight)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return newStyles(m.Palette()).app.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// RenderBody renders only the active panel, without shell chrome.
func (m Model) RenderBody(width, height int) string {
	if len(m.tabs) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	return m.tabs[m.activeTab].Build(&m).Render(width, height)
}

func renderHeader(m Model) string {
	st := newStyles(m.Palette())
	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, st.activeTab.Render(label))
		} else {
			tabs = append(tabs, st.inactiveTab.Render(label))
		}
	}
	left := st.headerApp.Render(" "+m.appName+" ") + st.themeTag.Render("◐ "+m.theme.Label()+" ")
	right := st.tabSep.Render(" ") + strings.Join(tabs, st.tabSep.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(st.headerBar, max(1, m.width), left+st.tabSep.Render(strings.Repeat(" ", gap))+right, m.Palette().Mantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func indent(s string, n int) string {
	if s == "" {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
