package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panelgrid/internal/config"
	"panelgrid/internal/grid"
	"panelgrid/internal/trace"
)

// update feeds msg to the model and runs the resulting commands until they
// stop producing messages. Terminal mode changes are discarded.
func update(m *AppModel, msg tea.Msg) {
	cmd := m.update(msg)
	m.motion.drain()
	for cmd != nil {
		next := cmd()
		cmd = nil
		if next == nil {
			break
		}
		if _, quit := next.(tea.QuitMsg); quit {
			break
		}
		cmd = m.update(next)
		m.motion.drain()
	}
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func press(m *AppModel, x, y int) {
	update(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func dragTo(m *AppModel, x, y int) {
	update(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *AppModel, x, y int) {
	update(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func panel(t *testing.T, m *AppModel, id grid.PanelID) grid.Panel {
	t.Helper()
	for _, p := range m.Engine.Panels() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("panel %d not found", id)
	return grid.Panel{}
}

func TestNewAppModel_InvalidLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Panels = append(cfg.Panels, cfg.Panels[0])
	_, err := NewAppModel(cfg, nil)
	assert.Error(t, err)
}

func TestView_BeforeFirstResize(t *testing.T) {
	m, err := NewAppModel(config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Measuring terminal…", m.AsTeaModel().View())

	m.Engine.SelectPanel(1)
	_, ok := m.Engine.Selected()
	assert.False(t, ok, "nothing can be measured yet")
}

func TestMouse_SelectThenClickOutsideSnaps(t *testing.T) {
	m := newTestApp(t)

	press(m, 5, 3)
	release(m, 5, 3)
	p := panel(t, m, 1)
	require.Equal(t, grid.ModeFreeForm, p.Mode())
	assert.Equal(t, grid.Rect{X: 0, Y: 0, Width: 300, Height: 160}, *p.Rect)
	assert.Equal(t, ModeFreeForm, m.Mode())
	assert.Equal(t, grid.PanelID(1), m.Focus.Current)

	press(m, 50, 20)
	p = panel(t, m, 1)
	assert.Equal(t, grid.ModeGrid, p.Mode())
	assert.Equal(t, grid.Placement{Column: 1, Row: 1, ColumnSpan: 3, RowSpan: 2}, p.Placement)
	assert.Equal(t, ModeGrid, m.Mode())
}

func TestMouse_ResizeThenSnapKey(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	press(m, 29, 8)
	require.Equal(t, ModeDragging, m.Mode())
	assert.True(t, m.motion.active)

	dragTo(m, 39, 12)
	assert.Equal(t, grid.Rect{X: 0, Y: 0, Width: 400, Height: 240}, *panel(t, m, 1).Rect)

	release(m, 39, 12)
	assert.Equal(t, ModeFreeForm, m.Mode())
	assert.False(t, m.motion.active)

	update(m, keyMsg("s"))
	p := panel(t, m, 1)
	assert.Equal(t, grid.ModeGrid, p.Mode())
	assert.Equal(t, grid.Placement{Column: 1, Row: 1, ColumnSpan: 4, RowSpan: 3}, p.Placement)
}

func TestMouse_MoveThenLeaderSnap(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	press(m, 5, 3)
	dragTo(m, 15, 7)
	release(m, 15, 7)
	assert.Equal(t, grid.Rect{X: 100, Y: 80, Width: 300, Height: 160}, *panel(t, m, 1).Rect)

	update(m, keyMsg(" "))
	update(m, keyMsg("s"))
	assert.False(t, m.KeyHandler.LeaderWaiting)
	assert.Equal(t, grid.Placement{Column: 2, Row: 2, ColumnSpan: 3, RowSpan: 2}, panel(t, m, 1).Placement)
}

func TestMouse_MotionWithoutDragIgnored(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	dragTo(m, 50, 10)
	assert.Equal(t, grid.Rect{X: 0, Y: 0, Width: 300, Height: 160}, *panel(t, m, 1).Rect)
}

func TestMouse_OutsideContainerIgnored(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	press(m, 5, 0)  // header
	press(m, 5, 32) // footer
	update(m, tea.MouseMsg{X: 50, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Equal(t, grid.ModeFreeForm, panel(t, m, 1).Mode())
}

func TestKey_EscCancelsDrag(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	press(m, 5, 3)
	dragTo(m, 15, 7)
	update(m, keyMsg("esc"))

	assert.False(t, m.Engine.Dragging())
	assert.False(t, m.motion.active)
	p := panel(t, m, 1)
	require.Equal(t, grid.ModeFreeForm, p.Mode())
	assert.Equal(t, grid.Rect{X: 0, Y: 0, Width: 300, Height: 160}, *p.Rect)
}

func TestKey_EscWithoutDragIsNoop(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)

	update(m, keyMsg("esc"))
	assert.Equal(t, grid.ModeFreeForm, panel(t, m, 1).Mode())
}

func TestKey_TabCyclesSelection(t *testing.T) {
	m := newTestApp(t)

	update(m, keyMsg("tab"))
	sel, ok := m.Engine.Selected()
	require.True(t, ok)
	assert.Equal(t, grid.PanelID(1), sel.ID)

	update(m, keyMsg("tab"))
	sel, _ = m.Engine.Selected()
	assert.Equal(t, grid.PanelID(2), sel.ID)
	// Box 1 returns to its grid placement untouched.
	p := panel(t, m, 1)
	assert.Equal(t, grid.ModeGrid, p.Mode())
	assert.Equal(t, grid.Placement{Column: 1, Row: 1, ColumnSpan: 3, RowSpan: 2}, p.Placement)

	update(m, keyMsg("shift+tab"))
	sel, _ = m.Engine.Selected()
	assert.Equal(t, grid.PanelID(1), sel.ID)
}

func TestKey_TabIgnoredWhileDragging(t *testing.T) {
	m := newTestApp(t)
	press(m, 5, 3)
	release(m, 5, 3)
	press(m, 5, 3)

	update(m, keyMsg("tab"))
	sel, _ := m.Engine.Selected()
	assert.Equal(t, grid.PanelID(1), sel.ID)
	assert.True(t, m.Engine.Dragging())
}

func TestKey_Quit(t *testing.T) {
	m := newTestApp(t)
	for _, k := range []string{"q", "ctrl+c"} {
		cmd := m.update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}

	update(m, keyMsg(" "))
	cmd := m.update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp(t)

	update(m, keyMsg("?"))
	require.Equal(t, 1, m.Overlays.Len())
	top, _ := m.Overlays.Peek()
	assert.IsType(t, &HelpView{}, top.View)
	assert.Contains(t, m.AsTeaModel().View(), "Recent gestures")

	// Pointer input does not reach the surface under an overlay.
	press(m, 5, 3)
	_, ok := m.Engine.Selected()
	assert.False(t, ok)

	update(m, keyMsg("esc"))
	assert.Equal(t, 0, m.Overlays.Len())
}

func TestWindowResizeRemeasures(t *testing.T) {
	m := newTestApp(t)
	assert.InDelta(t, 100.0, m.Engine.ColumnWidth(), 1e-9)

	update(m, windowSize(50, 33))
	assert.InDelta(t, 50.0, m.Engine.ColumnWidth(), 1e-9)
}

func TestSPCShowsKeybindHints(t *testing.T) {
	m := newTestApp(t)
	adapter := m.AsTeaModel()

	adapter.Update(keyMsg(" "))
	require.True(t, m.KeyHandler.LeaderWaiting)
	view := adapter.View()
	for _, hint := range []string{"Quit", "Re-measure"} {
		assert.Contains(t, view, hint)
	}
	assert.NotContains(t, view, "Snap to grid")

	adapter.Update(keyMsg("esc"))
	update(m, keyMsg("tab"))
	adapter.Update(keyMsg(" "))
	assert.Contains(t, adapter.View(), "Snap to grid")
}

func TestView_StatusLine(t *testing.T) {
	m, err := NewAppModel(config.Default(), trace.NewRecorder(nil, 0))
	require.NoError(t, err)
	update(m, windowSize(100, 33))
	press(m, 5, 3)

	view := m.AsTeaModel().View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 33)
	for _, want := range []string{"FreeForm", "#1 0,0 300x160", "col 1/span 3, row 1/span 2", "col 100.0px", "select #1"} {
		assert.Contains(t, lines[31], want)
	}
	assert.Contains(t, view, "Box 1")
	assert.Contains(t, view, handleGlyph)
}

func TestAdapter_MotionModeFollowsDrag(t *testing.T) {
	m := newTestApp(t)
	adapter := m.AsTeaModel()
	press(m, 5, 3)
	release(m, 5, 3)

	_, cmd := adapter.Update(tea.MouseMsg{X: 29, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.NotNil(t, cmd, "drag start switches to all-motion reporting")
	assert.Empty(t, m.motion.pending)

	_, cmd = adapter.Update(tea.MouseMsg{X: 29, Y: 8, Action: tea.MouseActionRelease})
	assert.NotNil(t, cmd, "drag end restores cell-motion reporting")
	assert.False(t, m.motion.active)
}
