package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/footprint/core/theme"
	"github.com/jask/footprint/core/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one dashboard panel. Build receives the model so panels read the
// current palette at render time instead of holding their own copy.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// TabInitializer is implemented by tabs that need work done when the program
// starts.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Options carries the start-up state that does not come from tabs or
// registries.
type Options struct {
	AppName  string
	Theme    theme.Mode
	StartTab int
	// Context bounds every asynchronous command the tabs schedule.
	Context context.Context
	Logger  *zap.Logger
}

type Model struct {
	width            int
	height           int
	tabs             []Tab
	activeTab        int
	theme            theme.Mode
	screens          ScreenStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	status           string
	statusErr        bool
	quitting         bool
	appName          string
	ctx              context.Context
	log              *zap.Logger
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, opts Options) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Theme == "" {
		opts.Theme = theme.Light
	}
	if opts.AppName == "" {
		opts.AppName = "Footprint"
	}
	m := Model{
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		theme:    opts.Theme,
		status:   "Ready",
		appName:  opts.AppName,
		ctx:      opts.Context,
		log:      opts.Logger,
		width:    100,
		height:   32,
	}
	m.SwitchTab(opts.StartTab)
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

// SwitchTab activates the tab at index. Out-of-range indexes are ignored so
// the active tab is always valid.
func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) || index == m.activeTab {
		return
	}
	m.activeTab = index
	m.log.Debug("tab switched", zap.String("tab", m.tabs[index].ID()))
}

// CycleTab moves delta tabs forward, wrapping at either end.
func (m *Model) CycleTab(delta int) {
	n := len(m.tabs)
	if n == 0 {
		return
	}
	m.SwitchTab(((m.activeTab+delta)%n + n) % n)
}

// SwitchTabByID activates the tab with id and reports whether it exists.
func (m *Model) SwitchTabByID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.SwitchTab(i)
			return true
		}
	}
	return false
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) ActiveIndex() int { return m.activeTab }

func (m Model) Tabs() []Tab { return m.tabs }

// ToggleTheme flips light/dark. Only the palette changes.
func (m *Model) ToggleTheme() {
	m.theme = m.theme.Toggle()
	m.log.Debug("theme toggled", zap.String("theme", string(m.theme)))
}

func (m Model) Theme() theme.Mode { return m.theme }

func (m Model) Palette() theme.Palette { return theme.For(m.theme) }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m Model) Size() (int, int) { return m.width, m.height }

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int { return m.screens.Len() }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Context() context.Context { return m.ctx }

func (m Model) Logger() *zap.Logger { return m.log }
