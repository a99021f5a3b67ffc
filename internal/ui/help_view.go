package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"panelgrid/internal/trace"
)

// HelpView lists every key binding and the most recent gestures.
type HelpView struct {
	keys     string
	gestures []string
}

var _ View = (*HelpView)(nil)

// NewHelpView snapshots the bindings for mode and the recorder's recent spans.
// rec may be nil.
func NewHelpView(keyHandler *KeyHandler, mode AppMode, rec *trace.Recorder) *HelpView {
	v := &HelpView{keys: renderFullHelp(keyHandler, mode)}
	if rec != nil {
		for _, s := range rec.Recent() {
			v.gestures = append(v.gestures, s.Summary())
		}
	}
	return v
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View. The help view is static.
func (v *HelpView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View.
func (v *HelpView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(v.keys)
	b.WriteString("\n\n")
	b.WriteString(Styles.Title.Render("Recent gestures"))
	b.WriteString("\n")
	if len(v.gestures) == 0 {
		b.WriteString(Styles.Muted.Render("none yet"))
	}
	for i, g := range v.gestures {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Muted.Render(g))
	}
	b.WriteString("\n\n")
	b.WriteString(Styles.Muted.Render("esc or ? to close"))
	return Styles.Box.Render(b.String())
}
