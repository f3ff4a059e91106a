package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/footprint/core/theme"
)

type styles struct {
	app         lipgloss.Style
	headerApp   lipgloss.Style
	headerBar   lipgloss.Style
	tabSep      lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	themeTag    lipgloss.Style
	statusBar   lipgloss.Style
	statusErr   lipgloss.Style
	footer      lipgloss.Style
	footerKey   lipgloss.Style
	footerDesc  lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		app:       lipgloss.NewStyle().Foreground(p.Text),
		headerApp: lipgloss.NewStyle().Foreground(p.Accent).Background(p.Mantle).Bold(true),
		headerBar: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Text),
		tabSep: lipgloss.NewStyle().
			Foreground(p.Border).
			Background(p.Mantle),
		activeTab: lipgloss.NewStyle().
			Background(p.Surface0).
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Muted).
			Padding(0, 1),
		themeTag: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Subtext),
		statusBar: lipgloss.NewStyle().
			Foreground(p.Success).
			Background(p.Surface0),
		statusErr: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.Surface0),
		footer:     lipgloss.NewStyle().Background(p.Mantle),
		footerKey:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Background(p.Mantle),
		footerDesc: lipgloss.NewStyle().Foreground(p.Muted).Background(p.Mantle),
	}
}
