package core

import "fmt"

const (
	ScopeCommand = "screen:command"
	ScopeGlobal  = "*"
)

// DefaultKeyBindings are the shell-wide bindings for a dashboard with tabCount
// tabs. Panels register their own scoped bindings on top.
func DefaultKeyBindings(tabCount int) []KeyBinding {
	out := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeGlobal}},
		{Keys: []string{"t"}, Action: "toggle-theme", Description: "theme", Scopes: []string{ScopeGlobal}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeGlobal}},
		{Keys: []string{"tab"}, Action: "next-tab", Description: "next tab", Scopes: []string{ScopeGlobal}, HelpKey: "tab/⇧tab"},
		{Keys: []string{"shift+tab"}, Action: "prev-tab", Description: "prev tab", Scopes: []string{ScopeGlobal}, Hidden: true},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{ScopeCommand}},
		{Keys: []string{"up", "ctrl+p"}, Action: "move-up", Description: "up", Scopes: []string{ScopeCommand}},
		{Keys: []string{"down", "ctrl+n"}, Action: "move-down", Description: "down", Scopes: []string{ScopeCommand}},
	}
	for i := 1; i <= tabCount && i <= 9; i++ {
		b := KeyBinding{
			Keys:        []string{fmt.Sprintf("%d", i)},
			Action:      fmt.Sprintf("switch-tab-%d", i),
			Description: "tabs",
			Scopes:      []string{ScopeGlobal},
			Hidden:      i > 1,
		}
		if i == 1 {
			b.HelpKey = fmt.Sprintf("1-%d", min(tabCount, 9))
		}
		out = append(out, b)
	}
	return out
}
