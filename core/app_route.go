package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case ThemeToggleMsg:
		m.ToggleTheme()
		m.SetStatus("Theme: " + m.theme.Label())
		return m, nil
	case tea.KeyMsg:
		return m.routeKey(msg)
	}
	return m, m.broadcast(msg)
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.Replace(next)
		return m, cmd
	}

	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsAction(msg, "toggle-theme", scope) {
		m.ToggleTheme()
		m.SetStatus("Theme: " + m.theme.Label())
		return m, nil
	}
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil
	}
	if m.keys.IsAction(msg, "next-tab", scope) {
		m.CycleTab(1)
		return m, nil
	}
	if m.keys.IsAction(msg, "prev-tab", scope) {
		m.CycleTab(-1)
		return m, nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			m.SwitchTab(i)
			return m, nil
		}
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

// broadcast hands non-key messages to the open screen and to every tab, so
// async results reach their panel even when another tab is active.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
		} else {
			m.screens.Replace(next)
		}
		cmds = append(cmds, cmd)
	}
	for _, t := range m.tabs {
		cmds = append(cmds, t.Update(m, msg))
	}
	return tea.Batch(cmds...)
}
