package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

// HomeTab is the overview: alert, exposure score, summary cards and quick
// actions that jump into the other panels.
type HomeTab struct {
	ds     *dataset.Dataset
	offset int
}

func NewHomeTab(ds *dataset.Dataset) *HomeTab {
	return &HomeTab{ds: ds}
}

func (t *HomeTab) ID() string    { return "home" }
func (t *HomeTab) Title() string { return "Home" }
func (t *HomeTab) Scope() string { return scopeHome }

func (t *HomeTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(key, "cloak-photos", t.Scope()):
		return showExposures(m, dataset.FilterImage)
	case keys.IsAction(key, "protect-voice", t.Scope()):
		return showExposures(m, dataset.FilterVoice)
	case keys.IsAction(key, "review-alert", t.Scope()):
		return showExposures(m, dataset.FilterAll)
	case keys.IsAction(key, "open-vault", t.Scope()):
		m.SwitchTabByID("vault")
		return core.StatusCmd("Data Vault")
	}
	if d := scrollDelta(m, key, t.Scope()); d != 0 {
		t.offset = max(0, t.offset+d)
	}
	return nil
}

// showExposures opens the scanner with filter f applied.
func showExposures(m *core.Model, f dataset.Filter) tea.Cmd {
	m.SwitchTabByID("exposure")
	return func() tea.Msg { return SetFilterMsg{Filter: f} }
}

func (t *HomeTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	h := t.ds.Home
	vault := t.ds.VaultStats()

	alert := func(width int) string {
		lines := append(wrap(h.AlertBody, width-4), widgets.Muted("r review exposures", p))
		return paneLines("⚠ "+h.AlertTitle, lines, p.Warning, p).Render(width, len(lines)+2)
	}

	score := func(width int) string {
		band := dataset.BandForScore(h.Score)
		inner := width - 4
		lines := []string{
			widgets.Muted("Based on your online image, voice, and data exposure", p),
			"",
			widgets.Strong(fmt.Sprintf("%d", h.Score), p.Accent) + widgets.Muted("/100  ", p) +
				widgets.Badge(string(band), riskColor(band.Level(), p), p),
		}
		lines = append(lines, wrap(h.ScoreSummary, inner)...)
		lines = append(lines, "")
		for _, b := range h.Bars {
			lines = append(lines, widgets.Meter(fmt.Sprintf("%-20s", b.Label), b.Percent, inner, p.Accent, p))
		}
		return paneLines("Your Digital Exposure Score", lines, p.Accent, p).Render(width, len(lines)+2)
	}

	cards := widgets.CardRow(
		widgets.Card{
			Title:   "Image Exposure",
			Value:   fmt.Sprintf("%d%%", h.ImageExposurePercent),
			Note:    fmt.Sprintf("of your public photos are uncloaked\nFound on %d platforms", h.ImagePlatforms),
			Color:   p.Error,
			Palette: p,
		},
		widgets.Card{
			Title:   "Voice Exposure",
			Value:   fmt.Sprintf("%d", h.VoiceSamples),
			Note:    "voice samples detected online\nModerate AI model risk",
			Color:   p.Warning,
			Palette: p,
		},
		widgets.Card{
			Title:   "Data Vault",
			Value:   fmt.Sprintf("%d", vault.Apps),
			Note:    "linked apps with stored permissions\nAES-256 encrypted",
			Color:   p.Success,
			Palette: p,
		},
	)

	actions := func(width int) string {
		lines := []string{
			widgets.Muted("Take control of your digital identity", p),
			spread(widgets.Strong("c  Cloak My Photos", p.Text), widgets.Muted(fmt.Sprintf("Protect %d images", h.ImagesToProtect), p), width-4),
			spread(widgets.Strong("p  Protect My Voice", p.Text), widgets.Muted("Add voice cloak", p), width-4),
			spread(widgets.Strong("o  Open Data Vault", p.Text), widgets.Muted("Manage permissions", p), width-4),
		}
		return paneLines("Quick Actions", lines, p.Info, p).Render(width, len(lines)+2)
	}

	return newColumn(&t.offset, alert, score, cardBlock(cards), actions)
}
