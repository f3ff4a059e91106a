package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/theme"
	"github.com/jask/footprint/internal/config"
	"github.com/jask/footprint/internal/dataset"
	"github.com/jask/footprint/internal/scan"
)

func testConfig() config.Config {
	return config.Config{
		UI:   config.UIConfig{Theme: "light", StartTab: "home"},
		Scan: config.ScanConfig{Delay: time.Hour, Progress: 47},
		Log:  config.LogConfig{Level: "info"},
	}
}

func newTestModel(t *testing.T) core.Model {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m := New(ds, testConfig(), core.Options{Context: ctx})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return next.(core.Model)
}

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func send(t *testing.T, m core.Model, msg tea.Msg) (core.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(core.Model), cmd
}

func body(m core.Model) string {
	w, h := m.Size()
	return m.RenderBody(w-2, h*3)
}

func exposureTab(t *testing.T, m core.Model) *ExposureTab {
	t.Helper()
	for _, tab := range m.Tabs() {
		if e, ok := tab.(*ExposureTab); ok {
			return e
		}
	}
	t.Fatalf("exposure tab missing")
	return nil
}

func vaultTab(t *testing.T, m core.Model) *VaultTab {
	t.Helper()
	for _, tab := range m.Tabs() {
		if v, ok := tab.(*VaultTab); ok {
			return v
		}
	}
	t.Fatalf("vault tab missing")
	return nil
}

func TestTabsFollowConfigOrder(t *testing.T) {
	m := newTestModel(t)
	ids := make([]string, 0, len(m.Tabs()))
	titles := make([]string, 0, len(m.Tabs()))
	for _, tab := range m.Tabs() {
		ids = append(ids, tab.ID())
		titles = append(titles, tab.Title())
		assert.Equal(t, "tab:"+tab.ID(), tab.Scope())
	}
	assert.Equal(t, config.Tabs, ids)
	assert.Equal(t, []string{"Home", "Exposure", "Data Vault", "Monetize", "Insights", "Profile"}, titles)
}

func TestEachTabRendersItsOwnPanel(t *testing.T) {
	marks := map[string]string{
		"home":         "Your Digital Exposure Score",
		"exposure":     "Exposure Scanner",
		"vault":        "Encryption Status: Active",
		"monetization": "Data Sharing Overview",
		"education":    "Understand Your Data Rights",
		"profile":      "Transparency & Trust",
	}
	m := newTestModel(t)
	for i, id := range config.Tabs {
		m, _ = send(t, m, runeKey(rune('1'+i)))
		require.Equal(t, id, m.ActiveTab().ID())
		out := body(m)
		for other, mark := range marks {
			if other == id {
				assert.Contains(t, out, mark, "tab %s", id)
			} else {
				assert.NotContains(t, out, mark, "tab %s shows %s", id, other)
			}
		}
	}
}

func TestHomeShowsDerivedFigures(t *testing.T) {
	m := newTestModel(t)
	out := body(m)
	assert.Contains(t, out, "72")
	assert.Contains(t, out, "Moderate Risk")
	assert.Contains(t, out, "45%")
	assert.Contains(t, out, "35")
	assert.Contains(t, out, "Protect 24 images")
}

func TestVoiceFilterShowsYouTubeOnly(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('2'))
	m, _ = send(t, m, runeKey('v'))

	exp := exposureTab(t, m)
	assert.Equal(t, dataset.FilterVoice, exp.Filter())
	visible := exp.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "YouTube", visible[0].Platform)

	out := body(m)
	assert.Contains(t, out, "YouTube")
	assert.Contains(t, out, "Results (1)")
	assert.Contains(t, out, "Review")
	for _, other := range []string{"Instagram", "TikTok", "Reddit", "LinkedIn"} {
		assert.NotContains(t, out, other)
	}
}

func TestFilterCycleAndAll(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('2'))
	exp := exposureTab(t, m)

	m, _ = send(t, m, runeKey('f'))
	assert.Equal(t, dataset.FilterImage, exp.Filter())
	assert.Len(t, exp.Visible(), 4)

	m, _ = send(t, m, runeKey('a'))
	assert.Equal(t, dataset.FilterAll, exp.Filter())
	assert.Equal(t, dataset.FilterExposures(exp.ds.Exposures, dataset.FilterAll), exp.Visible())
	assert.Contains(t, body(m), "Results (6)")
}

func TestHomeQuickActionSetsFilter(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, runeKey('c'))
	require.Equal(t, "exposure", m.ActiveTab().ID())
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, dataset.FilterImage, exposureTab(t, m).Filter())
}

func TestScanLifecycle(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('2'))
	exp := exposureTab(t, m)

	m, cmd := send(t, m, runeKey('s'))
	require.NotNil(t, cmd)
	assert.True(t, exp.Scanning())
	out := body(m)
	assert.Contains(t, out, "47%")
	assert.Contains(t, out, "Scanning for face and voice matches")

	filter := exp.Filter()
	m, again := send(t, m, runeKey('s'))
	assert.Nil(t, again, "second start must be a no-op")
	assert.True(t, exp.Scanning())
	assert.Equal(t, filter, exp.Filter())

	// Switching tabs leaves the scan running; completion still lands.
	m, _ = send(t, m, runeKey('1'))
	m, _ = send(t, m, scan.DoneMsg{Gen: exp.scan.Gen()})
	assert.False(t, exp.Scanning())
	assert.Equal(t, "home", m.ActiveTab().ID())

	m, _ = send(t, m, runeKey('2'))
	assert.NotContains(t, body(m), "47%")
	assert.Contains(t, body(m), "Start New Scan")
}

func TestScanCanceledWithProgramContext(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ds, testConfig(), core.Options{Context: ctx})
	m, _ = send(t, m, runeKey('2'))
	m, cmd := send(t, m, runeKey('s'))
	require.NotNil(t, cmd)

	cancel()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		require.IsType(t, scan.CanceledMsg{}, msg)
		m, _ = send(t, m, msg)
		assert.False(t, exposureTab(t, m).Scanning())
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not release on cancel")
	}
}

func TestVaultToggleTwiceRestores(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('3'))
	v := vaultTab(t, m)

	require.True(t, v.IsOpen(dataset.SectionBiometric))
	assert.Contains(t, body(m), "Facial Recognition Data")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, v.IsOpen(dataset.SectionBiometric))
	assert.NotContains(t, body(m), "Facial Recognition Data")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, v.IsOpen(dataset.SectionBiometric))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, dataset.SectionCommunication, v.Selected())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, v.IsOpen(dataset.SectionCommunication))
	assert.True(t, v.IsOpen(dataset.SectionBiometric), "sections toggle independently")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, v.IsOpen(dataset.SectionCommunication))
}

func TestVaultSectionCaptions(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('3'))
	out := body(m)
	assert.Contains(t, out, "3 items • 6 app connections")
	assert.Contains(t, out, "Connected Apps")
	assert.Contains(t, out, "100%")
}

func TestMonetizationFigures(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('4'))
	out := body(m)
	assert.Contains(t, out, "$43")
	assert.Contains(t, out, "$114")
	assert.Contains(t, out, "per month from 3 data categories")
	assert.Contains(t, out, "5 protected • 3 shared")
}

func TestEducationMarkdownSections(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)
	md := EducationMarkdown(ds.Education)
	for _, want := range []string{
		"## Laws That Protect You",
		"## Top 3 Privacy Risks This Week",
		"## Latest AI Privacy Updates",
		"## Quick Privacy Tips",
		"GDPR",
	} {
		assert.Contains(t, md, want)
	}
}

func TestEducationRerendersOnThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('5'))
	edu := m.ActiveTab().(*EducationTab)

	light := body(m)
	assert.Equal(t, theme.Light, edu.renderedMode)
	m, _ = send(t, m, runeKey('t'))
	body(m)
	assert.Equal(t, theme.Dark, edu.renderedMode)
	m, _ = send(t, m, runeKey('t'))
	assert.Equal(t, light, body(m))
}

func educationTab(t *testing.T, m core.Model) *EducationTab {
	t.Helper()
	for _, tab := range m.Tabs() {
		if e, ok := tab.(*EducationTab); ok {
			return e
		}
	}
	t.Fatalf("education tab missing")
	return nil
}

func failRender(string, theme.Mode, int) (string, error) {
	return "", errors.New(`glamour: style "light" not found`)
}

func TestEducationRenderFailureAtStartup(t *testing.T) {
	m := newTestModel(t)
	educationTab(t, m).render = failRender

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	text, isErr := m.Status()
	assert.True(t, isErr)
	assert.Contains(t, text, "not found")
}

func TestEducationRenderFailureAfterThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('5'))
	edu := educationTab(t, m)
	body(m)

	edu.render = failRender
	m, _ = send(t, m, runeKey('t'))
	out := body(m)
	assert.Contains(t, out, "Laws That Protect You", "raw Markdown is shown when rendering fails")
	_, isErr := m.Status()
	assert.False(t, isErr)

	m, _ = send(t, m, runeKey('j'))
	text, isErr := m.Status()
	assert.True(t, isErr)
	assert.Contains(t, text, "not found")

	m, _ = send(t, m, runeKey('k'))
	_, isErr = m.Status()
	assert.True(t, isErr, "status stays until something replaces it")
}

func TestPaletteRunsCommand(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, 1, m.Screens())

	for _, r := range "insights" {
		m, _ = send(t, m, runeKey(r))
	}
	require.Equal(t, "home", m.ActiveTab().ID(), "typing in the palette must not switch tabs")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 0, m.Screens())
	require.NotNil(t, cmd)
	m, cmd = send(t, m, cmd())
	assert.Equal(t, "education", m.ActiveTab().ID())
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	text, _ := m.Status()
	assert.Equal(t, "Insights", text)
}

func TestScanStartCommandDisabledWhileScanning(t *testing.T) {
	m := newTestModel(t)
	reg := m.CommandRegistry()

	cmd := reg.Execute("scan.start", &m)
	require.NotNil(t, cmd)
	assert.Equal(t, "exposure", m.ActiveTab().ID())
	assert.True(t, exposureTab(t, m).Scanning())

	results := reg.Search("scan", m.ActiveScope(), &m)
	var start core.CommandResult
	for _, r := range results {
		if r.CommandID == "scan.start" {
			start = r
		}
	}
	assert.True(t, start.Disabled)
	assert.Equal(t, "scan already running", start.Reason)

	reg.Execute("scan.stop", &m)
	assert.False(t, exposureTab(t, m).Scanning())
}

func TestFooterShowsPanelKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('2'))
	footer := core.RenderFooter(m)
	assert.True(t, strings.Contains(footer, "scan") && strings.Contains(footer, "a/i/v/x/l"), footer)
}
