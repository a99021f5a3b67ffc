package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"panelgrid/internal/config"
	"panelgrid/internal/grid"
	"panelgrid/internal/surface"
	"panelgrid/internal/trace"
)

// AppModel is the root model: one panel surface plus keybindings and overlays.
type AppModel struct {
	Engine     *surface.Engine
	Recorder   *trace.Recorder
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Overlays   OverlayStack

	screen *screen
	motion *motionTracker
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for cfg. rec may be nil.
func NewAppModel(cfg config.Config, rec *trace.Recorder) (*AppModel, error) {
	model, err := grid.NewModel(cfg.Grid, cfg.Panels)
	if err != nil {
		return nil, fmt.Errorf("layout model: %w", err)
	}
	scr := &screen{cell: cfg.Cell}
	motion := &motionTracker{}
	deps := surface.Deps{Container: scr, Panels: scr, Subscriber: motion}
	if rec != nil {
		deps.Observer = rec
	}
	eng := surface.New(model, deps)
	scr.engine = eng

	focus := &FocusManager{}
	for _, p := range eng.Panels() {
		focus.Order = append(focus.Order, p.ID)
	}
	return &AppModel{
		Engine:     eng,
		Recorder:   rec,
		KeyHandler: NewKeyHandler(NewDefaultRegistry()),
		Focus:      focus,
		screen:     scr,
		motion:     motion,
	}, nil
}

// NewDefaultRegistry returns the surface's key bindings.
func NewDefaultRegistry() *KeybindRegistry {
	selected := []AppMode{ModeFreeForm, ModeDragging}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("s", msgCmd(SnapMsg{}), "snap", selected)
	reg.BindWithDescForMode("SPC s", msgCmd(SnapMsg{}), "Snap to grid", selected)
	reg.BindWithDescForMode("esc", msgCmd(CancelDragMsg{}), "cancel drag", []AppMode{ModeDragging})
	reg.BindWithDescForMode("SPC c", msgCmd(CancelDragMsg{}), "Cancel drag", []AppMode{ModeDragging})
	reg.BindWithDesc("tab", msgCmd(SelectNextMsg{}), "next box")
	reg.BindWithDesc("shift+tab", msgCmd(SelectPrevMsg{}), "prev box")
	reg.BindWithDesc("SPC r", msgCmd(RefreshContainerMsg{}), "Re-measure")
	reg.BindWithDesc("?", msgCmd(ShowHelpMsg{}), "help")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.motion.drain())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

// Mode derives the interaction mode from the engine.
func (m *AppModel) Mode() AppMode {
	if m.Engine.Dragging() {
		return ModeDragging
	}
	if _, ok := m.Engine.Selected(); ok {
		return ModeFreeForm
	}
	return ModeGrid
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg.Width, msg.Height)
		m.Engine.RefreshContainer()
	case tea.MouseMsg:
		// An open overlay swallows presses; a running drag still finishes.
		if m.Overlays.Len() == 0 || msg.Action != tea.MouseActionPress {
			m.handleMouse(msg)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case SnapMsg:
		m.Engine.CommitAllSelected()
	case CancelDragMsg:
		m.Engine.CancelDrag()
	case SelectNextMsg:
		m.selectStep(m.Focus.Next)
	case SelectPrevMsg:
		m.selectStep(m.Focus.Prev)
	case RefreshContainerMsg:
		m.Engine.RefreshContainer()
	case ShowHelpMsg:
		if m.Overlays.Len() == 0 {
			v := NewHelpView(m.KeyHandler, m.Mode(), m.Recorder)
			m.Overlays.Push(Overlay{View: v, Dismiss: []string{"esc", "?", "q"}})
			return v.Init()
		}
	}
	return nil
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) {
	pt := m.screen.pointer(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.screen.containerCells().contains(msg.X, msg.Y) {
			return
		}
		m.Engine.PointerDown(pt, m.screen.hitTest(msg.X, msg.Y, m.Engine.Panels()))
		if sel, ok := m.Engine.Selected(); ok {
			m.Focus.SetFocus(sel.ID)
		}
	case tea.MouseActionMotion:
		if m.motion.active {
			m.Engine.PointerMove(pt)
		}
	case tea.MouseActionRelease:
		m.Engine.PointerUp(pt)
	}
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.Overlays.HandleKey(msg); ok {
		return cmd
	}
	_, cmd := m.KeyHandler.Handle(msg)
	return cmd
}

// selectStep selects the panel returned by step. Ignored while dragging.
func (m *AppModel) selectStep(step func() (grid.PanelID, bool)) {
	if m.Engine.Dragging() {
		return
	}
	if id, ok := step(); ok {
		m.Engine.SelectPanel(id)
	}
}
