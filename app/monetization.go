package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

type MonetizationTab struct {
	ds     *dataset.Dataset
	offset int
}

func NewMonetizationTab(ds *dataset.Dataset) *MonetizationTab {
	return &MonetizationTab{ds: ds}
}

func (t *MonetizationTab) ID() string    { return "monetization" }
func (t *MonetizationTab) Title() string { return "Monetize" }
func (t *MonetizationTab) Scope() string { return scopeMonetization }

func (t *MonetizationTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if d := scrollDelta(m, key, t.Scope()); d != 0 {
			t.offset = max(0, t.offset+d)
		}
	}
	return nil
}

func (t *MonetizationTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	mon := t.ds.Monetization
	earn := t.ds.EarningsStats()

	cards := widgets.CardRow(
		widgets.Card{
			Title:   "Current Earnings",
			Value:   dollars(earn.Current),
			Note:    fmt.Sprintf("per month from %d data categories", earn.Shared),
			Color:   p.Money,
			Palette: p,
		},
		widgets.Card{
			Title:   "Potential Value",
			Value:   dollars(earn.Potential),
			Note:    "if all categories shared",
			Color:   p.Accent,
			Palette: p,
		},
		widgets.Card{
			Title:   "Active Buyers",
			Value:   fmt.Sprintf("%d", mon.ActiveBuyers),
			Note:    "verified data partners",
			Color:   p.Info,
			Palette: p,
		},
	)

	overview := func(width int) string {
		inner := width - 4
		lines := []string{
			widgets.Meter(fmt.Sprintf("%-10s", "Protected"), 100-earn.SharedPercent, inner, p.Success, p),
			widgets.Meter(fmt.Sprintf("%-10s", "Shared"), earn.SharedPercent, inner, p.Money, p),
			widgets.Muted(fmt.Sprintf("%d protected • %d shared", earn.Protected, earn.Shared), p),
		}
		return paneLines("Data Sharing Overview", lines, p.Border, p).Render(width, len(lines)+2)
	}

	chart := func(width int) string {
		bars := make([]widgets.BarPoint, 0, len(mon.Categories))
		for _, c := range mon.Categories {
			color := p.Muted
			if c.Sharing {
				color = p.Money
			}
			bars = append(bars, widgets.BarPoint{Label: c.Name, Value: float64(c.MonthlyValue), Color: color})
		}
		rows := len(bars) + 1
		body := widgets.BarChart{Bars: bars, Palette: p}.Render(width-4, rows)
		return paneLines("Monthly Value by Category", strings.Split(body, "\n"), p.Border, p).Render(width, rows+2)
	}

	categories := func(width int) string {
		inner := width - 4
		lines := make([]string, 0, len(mon.Categories)*3)
		for i, c := range mon.Categories {
			if i > 0 {
				lines = append(lines, "")
			}
			sharing := widgets.Muted("Private", p)
			if c.Sharing {
				sharing = widgets.Colored("Sharing enabled", p.Success)
			}
			lines = append(lines,
				spread(widgets.Strong(c.Name, p.Text)+"  "+widgets.Badge(c.Status.Label(), categoryStatusColor(c.Status, p), p),
					widgets.Strong(dollars(c.MonthlyValue)+"/mo", p.Money), inner),
				spread(widgets.Muted("  "+c.Description, p), sharing+" "+widgets.Switch(c.Sharing, p), inner),
			)
		}
		return paneLines("Data Categories", lines, p.Border, p).Render(width, len(lines)+2)
	}

	rules := func(width int) string {
		lines := toggleLines(mon.Rules, width-4, p)
		return paneLines("Sharing Rules", lines, p.Border, p).Render(width, len(lines)+2)
	}

	return newColumn(&t.offset, cardBlock(cards), overview, chart, categories, rules)
}
