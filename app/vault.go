package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

// VaultTab lists the vault sections. Each one opens and closes on its own;
// the open set starts as {biometric}.
type VaultTab struct {
	ds     *dataset.Dataset
	open   map[dataset.SectionID]bool
	cursor int
	offset int
}

func NewVaultTab(ds *dataset.Dataset) *VaultTab {
	return &VaultTab{
		ds:   ds,
		open: map[dataset.SectionID]bool{dataset.SectionBiometric: true},
	}
}

func (t *VaultTab) ID() string    { return "vault" }
func (t *VaultTab) Title() string { return "Data Vault" }
func (t *VaultTab) Scope() string { return scopeVault }

func (t *VaultTab) IsOpen(id dataset.SectionID) bool { return t.open[id] }

// Toggle flips membership of id in the open set and reports the new state.
func (t *VaultTab) Toggle(id dataset.SectionID) bool {
	if t.open[id] {
		delete(t.open, id)
		return false
	}
	t.open[id] = true
	return true
}

// SetAll opens or closes every section.
func (t *VaultTab) SetAll(open bool) {
	for _, s := range t.ds.Vault.Sections {
		if open {
			t.open[s.ID] = true
		} else {
			delete(t.open, s.ID)
		}
	}
}

// Selected is the section under the cursor.
func (t *VaultTab) Selected() dataset.SectionID {
	if len(t.ds.Vault.Sections) == 0 {
		return ""
	}
	return t.ds.Vault.Sections[t.cursor].ID
}

func (t *VaultTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	n := len(t.ds.Vault.Sections)
	switch {
	case keys.IsAction(key, "cursor-up", t.Scope()):
		t.cursor = max(0, t.cursor-1)
	case keys.IsAction(key, "cursor-down", t.Scope()):
		t.cursor = min(max(0, n-1), t.cursor+1)
	case keys.IsAction(key, "toggle-section", t.Scope()):
		id := t.Selected()
		if id == "" {
			return nil
		}
		open := t.Toggle(id)
		m.Logger().Debug("vault section toggled", zap.String("section", string(id)), zap.Bool("open", open))
	}
	return nil
}

func (t *VaultTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	stats := t.ds.VaultStats()

	banner := func(width int) string {
		lines := []string{
			widgets.Badge("Secure", p.Success, p) + "  " + widgets.Muted(t.ds.Vault.Banner, p),
			"",
			widgets.Strong("Export Vault", p.Text) + widgets.Muted("  •  ", p) +
				widgets.Strong("Add New Key", p.Text) + widgets.Muted("  •  ", p) +
				widgets.Strong("Sync Settings", p.Text),
		}
		return paneLines("Encryption Status: Active", lines, p.Success, p).Render(width, len(lines)+2)
	}

	blocks := []func(int) string{banner}
	for i, s := range t.ds.Vault.Sections {
		blocks = append(blocks, t.section(s, i == t.cursor, m))
	}
	blocks = append(blocks, cardBlock(widgets.CardRow(
		widgets.Card{Title: "Total Items", Value: fmt.Sprintf("%d", stats.Items), Note: fmt.Sprintf("across %d sections", len(t.ds.Vault.Sections)), Color: p.Accent, Palette: p},
		widgets.Card{Title: "Connected Apps", Value: fmt.Sprintf("%d", stats.Apps), Note: "with stored permissions", Color: p.Info, Palette: p},
		widgets.Card{Title: "Encryption Coverage", Value: fmt.Sprintf("%d%%", stats.EncryptionCoverage), Note: "AES-256", Color: p.Success, Palette: p},
	)))

	col := newColumn(&t.offset, blocks...)
	col.focus = t.cursor + 1
	return col
}

func (t *VaultTab) section(s dataset.VaultSection, selected bool, m *core.Model) func(int) string {
	return func(width int) string {
		p := m.Palette()
		st := s.Stats()
		inner := width - 4
		arrow := "▸ "
		if t.open[s.ID] {
			arrow = "▾ "
		}
		lines := []string{widgets.Muted(fmt.Sprintf("%d items • %d app connections", st.Items, st.Apps), p)}
		if t.open[s.ID] {
			for _, it := range s.Items {
				where := fmt.Sprintf("Shared with %d apps", it.Apps)
				if it.Status == dataset.VaultLocal {
					where = "Stored locally"
				}
				lines = append(lines,
					"",
					spread(widgets.Strong(it.Name, p.Text), widgets.Badge(it.Status.Label(), vaultStatusColor(it.Status, p), p), inner),
					spread(widgets.Muted("  "+where, p), widgets.Switch(it.Sharing, p)+widgets.Muted("  Manage", p), inner),
				)
			}
		}
		pane := paneLines(arrow+s.Title, lines, p.Border, p)
		pane.Selected = selected
		return pane.Render(width, len(lines)+2)
	}
}
