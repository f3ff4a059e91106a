package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/internal/config"
	"github.com/jask/footprint/internal/dataset"
	"github.com/jask/footprint/internal/scan"
	"github.com/jask/footprint/screens"
)

// Panels holds the concrete tabs so commands can act on them directly.
type Panels struct {
	Home         *HomeTab
	Exposure     *ExposureTab
	Vault        *VaultTab
	Monetization *MonetizationTab
	Education    *EducationTab
	Profile      *ProfileTab
}

func NewPanels(ds *dataset.Dataset, cfg config.Config) *Panels {
	return &Panels{
		Home:         NewHomeTab(ds),
		Exposure:     NewExposureTab(ds, scan.New(cfg.Scan.Delay, cfg.Scan.Progress)),
		Vault:        NewVaultTab(ds),
		Monetization: NewMonetizationTab(ds),
		Education:    NewEducationTab(ds),
		Profile:      NewProfileTab(ds),
	}
}

// Tabs returns the panels in config.Tabs order.
func (p *Panels) Tabs() []core.Tab {
	return []core.Tab{p.Home, p.Exposure, p.Vault, p.Monetization, p.Education, p.Profile}
}

// New builds the dashboard model. Theme and start tab come from cfg; opts
// supplies the context and logger.
func New(ds *dataset.Dataset, cfg config.Config, opts core.Options) core.Model {
	panels := NewPanels(ds, cfg)
	tabs := panels.Tabs()

	bindings := append(core.DefaultKeyBindings(len(tabs)), KeyBindings()...)
	commands := core.NewCommandRegistry(nil)
	RegisterCommands(commands, panels)

	opts.Theme = cfg.ThemeMode()
	if idx, err := config.TabIndex(cfg.UI.StartTab); err == nil {
		opts.StartTab = idx
	}
	m := core.NewModel(tabs, core.NewKeyRegistry(bindings), commands, opts)
	ConfigureModel(&m)
	return m
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		reg := model.CommandRegistry()
		return screens.NewCommandScreen(model.Keys(), scope,
			func(query string) []screens.CommandOption {
				results := reg.Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
}

func RegisterCommands(reg *core.CommandRegistry, p *Panels) {
	for i, t := range p.Tabs() {
		reg.Register(core.Command{
			ID:          "tab." + t.ID(),
			Name:        "Go to " + t.Title(),
			Description: "Show the " + t.Title() + " panel",
			Scopes:      []string{core.ScopeGlobal},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(i)
				return core.StatusCmd(t.Title())
			},
		})
	}

	reg.Register(core.Command{
		ID:          "theme.toggle",
		Name:        "Toggle theme",
		Description: "Switch between light and dark",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.ThemeToggleMsg{} }
		},
	})

	reg.Register(core.Command{
		ID:          "scan.start",
		Name:        "Start new scan",
		Description: "Scan for face and voice matches",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTabByID(p.Exposure.ID())
			return p.Exposure.StartScan(m)
		},
		Disabled: func(*core.Model) (bool, string) {
			return p.Exposure.Scanning(), "scan already running"
		},
	})
	reg.Register(core.Command{
		ID:          "scan.stop",
		Name:        "Stop scan",
		Description: "Abandon the running scan",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(m *core.Model) tea.Cmd {
			p.Exposure.StopScan(m)
			return nil
		},
		Disabled: func(*core.Model) (bool, string) {
			return !p.Exposure.Scanning(), "no scan running"
		},
	})

	for _, f := range dataset.Filters() {
		reg.Register(core.Command{
			ID:          "filter." + string(f),
			Name:        "Filter: " + f.Label(),
			Description: "Show " + f.Label() + " exposures",
			Scopes:      []string{core.ScopeGlobal},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTabByID(p.Exposure.ID())
				p.Exposure.SetFilter(m, f)
				return nil
			},
		})
	}

	reg.Register(core.Command{
		ID:          "vault.expand-all",
		Name:        "Expand all vault sections",
		Description: "Open every Data Vault section",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTabByID(p.Vault.ID())
			p.Vault.SetAll(true)
			return core.StatusCmd("Vault sections expanded")
		},
	})
	reg.Register(core.Command{
		ID:          "vault.collapse-all",
		Name:        "Collapse all vault sections",
		Description: "Close every Data Vault section",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTabByID(p.Vault.ID())
			p.Vault.SetAll(false)
			return core.StatusCmd("Vault sections collapsed")
		},
	})

	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit Footprint",
		Scopes:      []string{core.ScopeGlobal},
		Execute: func(*core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
