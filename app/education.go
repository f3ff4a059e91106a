package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jask/footprint/core"
	"github.com/jask/footprint/core/theme"
	"github.com/jask/footprint/core/widgets"
	"github.com/jask/footprint/internal/dataset"
)

// EducationTab renders laws, risks, updates and tips as Markdown through
// glamour, inside a scrollable viewport.
type EducationTab struct {
	markdown string
	vp       viewport.Model

	// rendered remembers what the viewport content was built for; glamour
	// output depends on both the style and the wrap width.
	renderedMode  theme.Mode
	renderedWidth int

	render    func(md string, mode theme.Mode, width int) (string, error)
	renderErr error
	reported  bool
}

func NewEducationTab(ds *dataset.Dataset) *EducationTab {
	return &EducationTab{
		markdown: EducationMarkdown(ds.Education),
		vp:       viewport.New(80, 20),
		render:   renderMarkdown,
	}
}

func (t *EducationTab) ID() string    { return "education" }
func (t *EducationTab) Title() string { return "Insights" }
func (t *EducationTab) Scope() string { return scopeEducation }

// InitTab renders the document at the starting size so a broken style is
// reported before the panel is ever shown.
func (t *EducationTab) InitTab(m *core.Model) tea.Cmd {
	w, _ := m.Size()
	if err := t.ensureRendered(m.Theme(), max(1, w-6), m.Logger()); err != nil {
		t.reported = true
		return core.ErrorCmd(err)
	}
	return nil
}

func (t *EducationTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	// Renders happen in Build, which cannot touch the status bar.
	if t.renderErr != nil && !t.reported {
		t.reported = true
		m.SetError(t.renderErr)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch scrollDelta(m, key, t.Scope()) {
	case -1:
		t.vp.LineUp(1)
	case 1:
		t.vp.LineDown(1)
	case -10:
		t.vp.HalfViewUp()
	case 10:
		t.vp.HalfViewDown()
	}
	return nil
}

func (t *EducationTab) Build(m *core.Model) widgets.Widget {
	p := m.Palette()
	return widgets.Func(func(width, height int) string {
		t.vp.Width = max(1, width-4)
		t.vp.Height = max(1, height-2)
		_ = t.ensureRendered(m.Theme(), t.vp.Width, m.Logger())
		title := "Understand Your Data Rights"
		if pct := t.vp.ScrollPercent(); !t.vp.AtTop() || !t.vp.AtBottom() {
			title = fmt.Sprintf("%s (%d%%)", title, int(pct*100))
		}
		return widgets.Pane{
			Title:   title,
			Content: t.vp.View(),
			Accent:  p.Accent,
			Palette: p,
		}.Render(width, height)
	})
}

// ensureRendered re-renders the Markdown when the theme or width changed.
// The scroll position survives the re-render. On failure the raw Markdown is
// shown and the error is kept until Update reports it.
func (t *EducationTab) ensureRendered(mode theme.Mode, width int, log *zap.Logger) error {
	if mode == t.renderedMode && width == t.renderedWidth {
		return t.renderErr
	}
	t.renderedMode, t.renderedWidth = mode, width
	out, err := t.render(t.markdown, mode, width)
	if err != nil {
		log.Warn("markdown render failed", zap.Error(err))
		out = t.markdown
		if t.renderErr == nil {
			t.reported = false
		}
	}
	t.renderErr = err
	t.vp.SetContent(strings.TrimRight(out, "\n"))
	return err
}

func renderMarkdown(md string, mode theme.Mode, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(mode.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// EducationMarkdown is the Insights document.
func EducationMarkdown(ed dataset.Education) string {
	var sb strings.Builder
	sb.WriteString("*Stay informed about privacy laws and emerging threats*\n\n")

	sb.WriteString("## Laws That Protect You\n\n")
	for _, l := range ed.Laws {
		fmt.Fprintf(&sb, "### %s (%s)\n\n", l.Name, l.Region)
		fmt.Fprintf(&sb, "**%s** · %s\n\n", l.Status, l.Coverage)
		fmt.Fprintf(&sb, "%s\n\n", l.Description)
	}

	fmt.Fprintf(&sb, "## Top %d Privacy Risks This Week\n\n", len(ed.Risks))
	for _, r := range ed.Risks {
		fmt.Fprintf(&sb, "### %s\n\n", r.Title)
		fmt.Fprintf(&sb, "**%s severity** · %s\n\n", r.Severity.Label(), r.Date)
		fmt.Fprintf(&sb, "%s\n\n", r.Description)
		fmt.Fprintf(&sb, "> Impact: %s\n\n", r.Impact)
	}

	sb.WriteString("## Latest AI Privacy Updates\n\n")
	for _, u := range ed.Updates {
		fmt.Fprintf(&sb, "### %s\n\n", u.Title)
		fmt.Fprintf(&sb, "*%s · %s*\n\n", u.Region, u.Date)
		fmt.Fprintf(&sb, "%s\n\n", u.Description)
	}

	sb.WriteString("## Quick Privacy Tips\n\n")
	for _, tip := range ed.Tips {
		fmt.Fprintf(&sb, "- %s\n", tip)
	}
	return sb.String()
}
