package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

type ProfileTab struct {
	ds     *dataset.Dataset
	offset int
}

func NewProfileTab(ds *dataset.Dataset) *ProfileTab {
	return &ProfileTab{ds: ds}
}

func (t *ProfileTab) ID() string    { return "profile" }
func (t *ProfileTab) Title() string { return "Profile" }
func (t *ProfileTab) Scope() string { return scopeProfile }

func (t *ProfileTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if d := scrollDelta(m, key, t.Scope()); d != 0 {
			t.offset = max(0, t.offset+d)
		}
	}
	return nil
}

func (t *ProfileTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	pr := t.ds.Profile

	card := func(width int) string {
		badges := make([]string, 0, len(pr.Badges))
		for i, b := range pr.Badges {
			color := p.Success
			if i > 0 {
				color = p.Accent
			}
			badges = append(badges, widgets.Badge(b, color, p))
		}
		lines := []string{
			widgets.Badge(pr.Initials, p.Accent, p) + "  " + widgets.Strong(pr.Name, p.Text) + "  " + strings.Join(badges, " "),
			widgets.Muted(pr.Email, p),
			widgets.Colored("Edit Profile", p.Accent),
			"",
			widgets.Heading("User ID Key", p),
			widgets.Colored(pr.UserKey, p.Subtext),
			widgets.Muted("Encryption key stored locally on your device", p),
		}
		return paneLines("Profile", lines, p.Accent, p).Render(width, len(lines)+2)
	}

	security := func(width int) string {
		lines := toggleLines(pr.Security, width-4, p)
		return paneLines("Security & Privacy", lines, p.Border, p).Render(width, len(lines)+2)
	}

	devices := func(width int) string {
		lines := make([]string, 0, len(pr.Devices))
		for _, d := range pr.Devices {
			lines = append(lines, spread(
				widgets.Strong(d.Name, p.Text)+widgets.Muted("  Last synced "+d.LastSynced, p),
				widgets.Badge(d.State, p.Success, p),
				width-4,
			))
		}
		return paneLines("Device Sync", lines, p.Border, p).Render(width, len(lines)+2)
	}

	trust := func(width int) string {
		lines := []string{
			widgets.Muted("View our commitment to your privacy", p),
			"View Open Source Code",
			"Read Transparency Reports",
			spread("Security Audit Results", widgets.Badge("Verified", p.Success, p), width-4),
		}
		return paneLines("Transparency & Trust", lines, p.Border, p).Render(width, len(lines)+2)
	}

	account := func(width int) string {
		lines := []string{
			"Download All My Data",
			widgets.Colored("Request Data Deletion", p.Error),
			"Sign Out",
		}
		return paneLines("Account Actions", lines, p.Border, p).Render(width, len(lines)+2)
	}

	version := func(width int) string {
		return widgets.Muted("Digital Identity Dashboard "+pr.Version, p)
	}

	return newColumn(&t.offset, card, security, devices, trust, account, version)
}
