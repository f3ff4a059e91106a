package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
)

const (
	scopeHome         = "tab:home"
	scopeExposure     = "tab:exposure"
	scopeVault        = "tab:vault"
	scopeMonetization = "tab:monetization"
	scopeEducation    = "tab:education"
	scopeProfile      = "tab:profile"
)

// scrolling lists the tabs whose content scrolls as one column.
var scrolling = []string{scopeHome, scopeExposure, scopeMonetization, scopeEducation, scopeProfile}

// KeyBindings are the panel bindings registered on top of the shell's.
func KeyBindings() []core.KeyBinding {
	return []core.KeyBinding{
		{Keys: []string{"c"}, Action: "cloak-photos", Description: "cloak photos", Scopes: []string{scopeHome}},
		{Keys: []string{"p"}, Action: "protect-voice", Description: "protect voice", Scopes: []string{scopeHome}},
		{Keys: []string{"o"}, Action: "open-vault", Description: "open vault", Scopes: []string{scopeHome}},
		{Keys: []string{"r"}, Action: "review-alert", Description: "review", Scopes: []string{scopeHome}},

		{Keys: []string{"s"}, Action: "start-scan", Description: "scan", Scopes: []string{scopeExposure}},
		{Keys: []string{"esc"}, Action: "stop-scan", Description: "stop", Scopes: []string{scopeExposure}, Hidden: true},
		{Keys: []string{"f"}, Action: "cycle-filter", Description: "next filter", Scopes: []string{scopeExposure}},
		{Keys: []string{"a"}, Action: "filter-all", Description: "filter", Scopes: []string{scopeExposure}, HelpKey: "a/i/v/x/l"},
		{Keys: []string{"i"}, Action: "filter-image", Scopes: []string{scopeExposure}, Hidden: true},
		{Keys: []string{"v"}, Action: "filter-voice", Scopes: []string{scopeExposure}, Hidden: true},
		{Keys: []string{"x"}, Action: "filter-text", Scopes: []string{scopeExposure}, Hidden: true},
		{Keys: []string{"l"}, Action: "filter-location", Scopes: []string{scopeExposure}, Hidden: true},

		{Keys: []string{"up", "k"}, Action: "cursor-up", Description: "section", Scopes: []string{scopeVault}, HelpKey: "↑/↓"},
		{Keys: []string{"down", "j"}, Action: "cursor-down", Scopes: []string{scopeVault}, Hidden: true},
		{Keys: []string{"enter", "space"}, Action: "toggle-section", Description: "expand/collapse", Scopes: []string{scopeVault}},

		{Keys: []string{"up", "k"}, Action: "scroll-up", Description: "scroll", Scopes: scrolling, HelpKey: "↑/↓"},
		{Keys: []string{"down", "j"}, Action: "scroll-down", Scopes: scrolling, Hidden: true},
		{Keys: []string{"pgup"}, Action: "page-up", Scopes: scrolling, Hidden: true},
		{Keys: []string{"pgdown"}, Action: "page-down", Scopes: scrolling, Hidden: true},
	}
}

// scrollDelta maps scroll keys onto a line delta for column panels.
func scrollDelta(m *core.Model, msg tea.KeyMsg, scope string) int {
	keys := m.Keys()
	switch {
	case keys.IsAction(msg, "scroll-up", scope):
		return -1
	case keys.IsAction(msg, "scroll-down", scope):
		return 1
	case keys.IsAction(msg, "page-up", scope):
		return -10
	case keys.IsAction(msg, "page-down", scope):
		return 10
	}
	return 0
}
