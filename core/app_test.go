package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/footprint/core/theme"
	"github.com/jask/footprint/core/widgets"
)

type markerTab struct{ id string }

func (t markerTab) ID() string    { return t.id }
func (t markerTab) Title() string { return strings.ToUpper(t.id[:1]) + t.id[1:] }
func (t markerTab) Scope() string { return "tab:" + t.id }
func (t markerTab) Update(*Model, tea.Msg) tea.Cmd {
	return nil
}
func (t markerTab) Build(m *Model) widgets.Widget {
	return widgets.Text(fmt.Sprintf("panel:%s:%s", t.id, m.Theme()))
}

var markerIDs = []string{"home", "exposure", "vault", "monetization", "education", "profile"}

func newMarkerModel(opts Options) Model {
	tabs := make([]Tab, len(markerIDs))
	for i, id := range markerIDs {
		tabs[i] = markerTab{id: id}
	}
	return NewModel(tabs, NewKeyRegistry(DefaultKeyBindings(len(tabs))), NewCommandRegistry(nil), opts)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestSelectingTabRendersExactlyThatPanel(t *testing.T) {
	m := newMarkerModel(Options{})
	for i, id := range markerIDs {
		m = press(m, runeKey(rune('1'+i)))
		view := m.View()
		if n := strings.Count(view, "panel:"); n != 1 {
			t.Fatalf("tab %s: %d panels rendered, want 1", id, n)
		}
		if !strings.Contains(view, "panel:"+id+":") {
			t.Fatalf("tab %s: wrong panel rendered:\n%s", id, view)
		}
		if m.ActiveTab().ID() != id {
			t.Fatalf("active tab = %s, want %s", m.ActiveTab().ID(), id)
		}
	}
}

func TestTabCycleWraps(t *testing.T) {
	m := newMarkerModel(Options{})
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveTab().ID() != "profile" {
		t.Fatalf("shift+tab from home should wrap to profile, got %s", m.ActiveTab().ID())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab().ID() != "home" {
		t.Fatalf("tab from profile should wrap to home, got %s", m.ActiveTab().ID())
	}
}

func TestThemeToggleTwiceRestoresRender(t *testing.T) {
	m := newMarkerModel(Options{Theme: theme.Light, StartTab: 2})
	before := m.View()

	m = press(m, runeKey('t'))
	if m.Theme() != theme.Dark {
		t.Fatalf("theme = %s after toggle, want dark", m.Theme())
	}
	if m.ActiveTab().ID() != "vault" {
		t.Fatalf("theme toggle must not change the tab")
	}
	mid := m.View()
	if mid == before {
		t.Fatalf("toggled render should differ")
	}

	m = press(m, runeKey('t'))
	m.SetStatus("Ready")
	if after := m.View(); after != before {
		t.Fatalf("double toggle changed the render:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestInvalidTabIndexIgnored(t *testing.T) {
	m := newMarkerModel(Options{StartTab: 9})
	if m.ActiveIndex() != 0 {
		t.Fatalf("out-of-range start tab should fall back to home")
	}
	next, _ := m.Update(TabSwitchMsg{Index: -1})
	if next.(Model).ActiveIndex() != 0 {
		t.Fatalf("negative index should be ignored")
	}
	if !m.SwitchTabByID("education") || m.ActiveTab().ID() != "education" {
		t.Fatalf("SwitchTabByID failed")
	}
	if m.SwitchTabByID("settings") {
		t.Fatalf("unknown tab id should not switch")
	}
}

func TestPaletteKeyOpensScreen(t *testing.T) {
	m := newMarkerModel(Options{})
	var gotScope string
	m.OpenCommandModal = func(_ *Model, scope string) Screen {
		gotScope = scope
		return &fakeScreen{}
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if m.Screens() != 1 {
		t.Fatalf("expected palette screen pushed")
	}
	if gotScope != "tab:home" {
		t.Fatalf("palette scope = %q, want tab:home", gotScope)
	}
	if !strings.Contains(m.View(), "screen") {
		t.Fatalf("expected popup in view")
	}
}

func TestViewFitsTerminal(t *testing.T) {
	m := newMarkerModel(Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = next.(Model)
	if got := len(strings.Split(m.View(), "\n")); got != 20 {
		t.Fatalf("view has %d lines, want 20", got)
	}
	if !strings.Contains(m.View(), "1:Home") || !strings.Contains(m.View(), "◐ Light") {
		t.Fatalf("header missing tabs or theme tag")
	}
}

type failingInitTab struct{ markerTab }

func (t failingInitTab) InitTab(*Model) tea.Cmd {
	return ErrorCmd(errors.New("style missing"))
}

func TestInitErrorReachesStatusBar(t *testing.T) {
	tabs := []Tab{markerTab{id: "home"}, failingInitTab{markerTab{id: "education"}}}
	m := NewModel(tabs, NewKeyRegistry(DefaultKeyBindings(len(tabs))), nil, Options{})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init should return the tab's command")
	}
	next, _ := m.Update(cmd())
	m = next.(Model)
	text, isErr := m.Status()
	if !isErr || text != "style missing" {
		t.Fatalf("status = %q (err %v), want error %q", text, isErr, "style missing")
	}
	if bar := RenderStatusBar(m); !strings.Contains(bar, "✗ style missing") {
		t.Fatalf("status bar missing error marker: %q", bar)
	}

	next, _ = m.Update(ErrorCmd(nil)())
	m = next.(Model)
	if text, isErr := m.Status(); isErr || text != "" {
		t.Fatalf("nil error should clear status, got %q (err %v)", text, isErr)
	}
}
