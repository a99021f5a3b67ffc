package ui

import tea "github.com/charmbracelet/bubbletea"

// SnapMsg commits every free-form panel back onto the grid (SPC s or s).
type SnapMsg struct{}

// CancelDragMsg aborts the active drag and restores the panel's start rectangle (esc, SPC c).
type CancelDragMsg struct{}

// SelectNextMsg selects the next panel in tab order (tab).
type SelectNextMsg struct{}

// SelectPrevMsg selects the previous panel in tab order (shift+tab).
type SelectPrevMsg struct{}

// ShowHelpMsg opens the help overlay (?).
type ShowHelpMsg struct{}

// RefreshContainerMsg re-measures the container (SPC r).
type RefreshContainerMsg struct{}

// msgCmd returns a command that emits msg.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
