package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// newHelpModel returns a help.Model styled with the shared theme.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Key
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// When keyHandler is in leader mode with a buffer (e.g. "SPC x"), shows next-level hints.
// Returns "" when not in leader mode.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	helpContent := newHelpModel().ShortHelpView(bindings)

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	content := Styles.Muted.Render(prefix) + " " + helpContent
	return Styles.Box.Render(content)
}

// renderFullHelp renders every binding for mode in columns.
func renderFullHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	return newHelpModel().FullHelpView(NewKeyMap(keyHandler.Registry, keyHandler, mode).FullHelp())
}
