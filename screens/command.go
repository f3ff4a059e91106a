package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the palette overlay. Typing narrows the list through
// search; navigation keys come from the key registry's command scope.
type CommandScreen struct {
	keys     *core.KeyRegistry
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(keys *core.KeyRegistry, scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings(0))
	}
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.KeyMap.Quit.SetEnabled(false)
	s := &CommandScreen{keys: keys, scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// Options are the currently listed commands, best match first.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

// Selected is the highlighted option, if any.
func (s *CommandScreen) Selected() (CommandOption, bool) {
	opt, ok := s.list.SelectedItem().(CommandOption)
	return opt, ok
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(key, "close", s.Scope()):
		return s, nil, true
	case s.keys.IsAction(key, "select", s.Scope()):
		it, ok := s.Selected()
		if !ok {
			return s, nil, true
		}
		if it.Disabled {
			return s, core.StatusCmd(it.Reason), true
		}
		if s.onSelect != nil {
			return s, func() tea.Msg { return s.onSelect(it.ID) }, true
		}
		return s, nil, true
	case s.keys.IsAction(key, "move-up", s.Scope()):
		s.list.CursorUp()
		return s, nil, false
	case s.keys.IsAction(key, "move-down", s.Scope()):
		s.list.CursorDown()
		return s, nil, false
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(key)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(3, height-3))
	header := "Command Palette  (" + s.scope + ")"
	if len(s.list.Items()) == 0 {
		return header + "\n" + s.input.View() + "\n\nNo matching commands"
	}
	return header + "\n" + s.input.View() + "\n" + s.list.View()
}
