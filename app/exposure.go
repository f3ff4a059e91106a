package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
	"github.com/jask/footprint/internal/scan"
)

// SetFilterMsg asks the exposure panel to replace its filter. Other panels
// send it instead of reaching into the scanner.
type SetFilterMsg struct {
	Filter dataset.Filter
}

// ExposureTab is the scanner: a simulated scan, risk figures and the
// filterable exposure list.
type ExposureTab struct {
	ds     *dataset.Dataset
	scan   *scan.Machine
	filter dataset.Filter
	offset int
}

func NewExposureTab(ds *dataset.Dataset, machine *scan.Machine) *ExposureTab {
	if machine == nil {
		machine = scan.New(scan.DefaultDelay, scan.DefaultProgress)
	}
	return &ExposureTab{ds: ds, scan: machine, filter: dataset.FilterAll}
}

func (t *ExposureTab) ID() string    { return "exposure" }
func (t *ExposureTab) Title() string { return "Exposure" }
func (t *ExposureTab) Scope() string { return scopeExposure }

func (t *ExposureTab) Filter() dataset.Filter { return t.filter }

func (t *ExposureTab) Scanning() bool { return t.scan.Scanning() }

// Visible is the exposure list under the current filter.
func (t *ExposureTab) Visible() []dataset.Exposure {
	return dataset.FilterExposures(t.ds.Exposures, t.filter)
}

func (t *ExposureTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scan.DoneMsg:
		if t.scan.Handle(msg) {
			m.Logger().Info("scan finished", zap.Uint64("gen", msg.Gen))
			return core.StatusCmd("Scan complete")
		}
		return nil
	case scan.CanceledMsg:
		if t.scan.Handle(msg) {
			m.Logger().Info("scan canceled", zap.Uint64("gen", msg.Gen), zap.Error(msg.Err))
		}
		return nil
	case SetFilterMsg:
		t.SetFilter(m, msg.Filter)
		return nil
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	return nil
}

func (t *ExposureTab) handleKey(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	keys := m.Keys()
	scope := t.Scope()
	switch {
	case keys.IsAction(msg, "start-scan", scope):
		return t.StartScan(m)
	case keys.IsAction(msg, "stop-scan", scope):
		t.StopScan(m)
		return nil
	case keys.IsAction(msg, "cycle-filter", scope):
		t.SetFilter(m, t.filter.Next())
		return nil
	}
	for _, f := range dataset.Filters() {
		if keys.IsAction(msg, "filter-"+string(f), scope) {
			t.SetFilter(m, f)
			return nil
		}
	}
	if d := scrollDelta(m, msg, scope); d != 0 {
		t.offset = max(0, t.offset+d)
	}
	return nil
}

// StartScan begins a scan bound to the program context. It is a no-op while
// one is already running.
func (t *ExposureTab) StartScan(m *core.Model) tea.Cmd {
	started, cmd := t.scan.Start(m.Context())
	if !started {
		m.SetStatus("Scan already running")
		return nil
	}
	m.Logger().Info("scan started",
		zap.Uint64("gen", t.scan.Gen()),
		zap.Duration("delay", t.scan.Delay()),
	)
	m.SetStatus("Scanning...")
	return cmd
}

func (t *ExposureTab) StopScan(m *core.Model) {
	if !t.scan.Stop() {
		return
	}
	m.Logger().Info("scan stopped", zap.Uint64("gen", t.scan.Gen()))
	m.SetStatus("Scan stopped")
}

// SetFilter replaces the active filter. The scan timer is left alone.
func (t *ExposureTab) SetFilter(m *core.Model, f dataset.Filter) {
	if f == t.filter {
		return
	}
	t.filter = f
	t.offset = 0
	m.Logger().Debug("filter changed", zap.String("filter", string(f)))
	m.SetStatus("Filter: " + f.Label())
}

func (t *ExposureTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	stats := t.ds.ExposureStats()

	header := func(width int) string {
		inner := width - 4
		lines := []string{widgets.Muted("Monitor your digital footprint across the web", p), ""}
		if t.scan.Scanning() {
			lines = append(lines,
				widgets.Badge("Scanning...", p.Info, p)+"  "+widgets.Colored("Scanning for face and voice matches across the web...", p.Info),
				widgets.Meter("Progress", t.scan.Progress(), inner, p.Info, p),
			)
			for _, l := range wrap(t.ds.Scanner.PlatformsNote, inner) {
				lines = append(lines, widgets.Muted(l, p))
			}
		} else {
			lines = append(lines, widgets.Badge("s  Start New Scan", p.Accent, p))
		}
		return paneLines("Exposure Scanner", lines, p.Accent, p).Render(width, len(lines)+2)
	}

	cards := widgets.CardRow(
		widgets.Card{
			Title:   "AI Model Risk",
			Value:   t.ds.Scanner.AIRisk + "  " + widgets.Badge("Alert", p.Error, p),
			Note:    t.ds.Scanner.AIRiskNote,
			Color:   p.Error,
			Palette: p,
		},
		widgets.Card{
			Title:   "Total Exposures",
			Value:   fmt.Sprintf("%d", stats.Total),
			Note:    fmt.Sprintf("Across %d platforms", stats.Platforms),
			Color:   p.Warning,
			Palette: p,
		},
		widgets.Card{
			Title:   "Protection Rate",
			Value:   fmt.Sprintf("%d%%", stats.ProtectionRate),
			Note:    fmt.Sprintf("%d items cloaked", stats.Cloaked),
			Color:   p.Success,
			Palette: p,
		},
	)

	filters := func(width int) string {
		parts := make([]string, 0, len(dataset.Filters()))
		for _, f := range dataset.Filters() {
			if f == t.filter {
				parts = append(parts, widgets.Badge(f.Label(), p.Accent, p))
			} else {
				parts = append(parts, widgets.Muted(" "+f.Label()+" ", p))
			}
		}
		line := strings.Join(parts, " ")
		return paneLines("Filter", []string{line}, p.Border, p).Render(width, 3)
	}

	results := func(width int) string {
		visible := t.Visible()
		lines := make([]string, 0, len(visible)*4)
		for i, e := range visible {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, exposureRow(e, width-4, m)...)
		}
		if len(lines) == 0 {
			lines = append(lines, widgets.Muted("No exposures match this filter.", p))
		}
		title := fmt.Sprintf("Results (%d)", len(visible))
		return paneLines(title, lines, p.Border, p).Render(width, len(lines)+2)
	}

	return newColumn(&t.offset, header, cardBlock(cards), filters, results)
}

// exposureRow is one result: marker, platform and badges, then description,
// then type and the status-dependent action.
func exposureRow(e dataset.Exposure, width int, m *core.Model) []string {
	p := m.Palette()
	marker := widgets.Colored(typeGlyph(e.Type), p.Subtext)
	if e.HasThumbnail() {
		marker = widgets.Colored("▦", p.Info)
	}
	left := marker + " " + widgets.Strong(e.Platform, p.Text) + "  " +
		widgets.Badge(e.Risk.Label()+" Risk", riskColor(e.Risk, p), p)
	right := widgets.Badge(e.Status.Label(), exposureStatusColor(e.Status, p), p)

	action := ""
	switch e.Status {
	case dataset.StatusUncloaked:
		action = widgets.Strong("→ Cloak Now", p.Accent)
	case dataset.StatusPending:
		action = widgets.Strong("→ Review", p.Warning)
	}
	return []string{
		spread(left, right, width),
		"  " + e.Description,
		spread(widgets.Muted("  Type: "+e.Type.Label(), p), action, width),
	}
}
