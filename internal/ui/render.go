package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panelgrid/internal/grid"
	"panelgrid/internal/ui/textutil"
)

// handleGlyph marks the resize handle of a free-form panel.
const handleGlyph = "◢"

func (m *AppModel) render() string {
	w, h := m.screen.width, m.screen.height
	if w <= 0 || h <= 0 {
		return "Measuring terminal…"
	}
	frame := newCanvas(w, h)
	frame.place(0, 0, m.renderHeader(w))

	c := m.screen.containerCells()
	if c.Height() > 0 {
		frame.place(c.X0, c.Y0, m.renderContainer(c))
	}
	for i, line := range m.renderFooter(w) {
		frame.place(0, h-footerRows+i, line)
	}

	m.Overlays.draw(frame)
	return frame.String()
}

func (m *AppModel) renderHeader(width int) string {
	title := Styles.Title.Render("panelgrid")
	cfg := m.Engine.Config()
	info := Styles.Muted.Render(fmt.Sprintf("  %d columns · row %.0fpx", cfg.Columns, cfg.RowHeight))
	return textutil.FitStyled(title+info, width)
}

// renderContainer draws grid panels first and free-form panels over them.
func (m *AppModel) renderContainer(c cellRect) string {
	cv := newCanvas(c.Width(), c.Height())
	panels := m.Engine.Panels()
	for _, p := range panels {
		if p.Mode() == grid.ModeGrid {
			m.drawPanel(cv, c, p)
		}
	}
	for _, p := range panels {
		if p.Mode() == grid.ModeFreeForm {
			m.drawPanel(cv, c, p)
		}
	}
	if hints := RenderKeybindHelp(m.KeyHandler, m.Mode()); hints != "" {
		_, bh := lipgloss.Size(hints)
		cv.place(0, c.Height()-bh, hints)
	}
	return cv.String()
}

func (m *AppModel) drawPanel(cv *canvas, c cellRect, p grid.Panel) {
	r := m.screen.panelCells(p)
	x, y := r.X0-c.X0, r.Y0-c.Y0
	inner, innerH := r.Width()-2, r.Height()-2

	style := Styles.Panel
	label := p.Label
	if p.Mode() == grid.ModeFreeForm {
		label += " (selected)"
	}
	lines := []string{textutil.Truncate(label, inner)}
	if p.Mode() == grid.ModeFreeForm {
		style = Styles.PanelSelected
		if innerH > 1 {
			lines = append(lines, textutil.Truncate(p.Rect.String(), inner))
		}
	} else if innerH > 1 {
		lines = append(lines, Styles.Muted.Render(textutil.Truncate(p.Placement.String(), inner)))
	}
	cv.place(x, y, style.Width(inner).Height(innerH).Render(strings.Join(lines, "\n")))
	if p.Mode() == grid.ModeFreeForm {
		hx, hy := r.handle()
		cv.place(hx-c.X0, hy-c.Y0, Styles.Handle.Render(handleGlyph))
	}
}

// renderFooter returns the status line and the key hint line.
func (m *AppModel) renderFooter(width int) []string {
	mode := m.Mode()
	parts := []string{Styles.Status.Render(mode.String())}
	if sel, ok := m.Engine.Selected(); ok {
		parts = append(parts, fmt.Sprintf("#%d %s", sel.ID, sel.Rect))
		if pl, ok := m.Engine.SnapPreview(sel.ID); ok {
			parts = append(parts, "→ "+pl.String())
		}
	}
	if cw := m.Engine.ColumnWidth(); cw > 0 {
		parts = append(parts, Styles.Muted.Render(fmt.Sprintf("col %.1fpx", cw)))
	} else {
		parts = append(parts, Styles.Muted.Render("container unmeasured"))
	}
	if m.Recorder != nil {
		if s, ok := m.Recorder.Last(); ok {
			parts = append(parts, Styles.Muted.Render(s.Summary()))
		}
	}
	status := strings.Join(parts, "  ")

	keys := newHelpModel().ShortHelpView(NewKeyMap(m.KeyHandler.Registry, m.KeyHandler, mode).ShortHelp())
	return []string{textutil.FitStyled(status, width), textutil.FitStyled(keys, width)}
}
