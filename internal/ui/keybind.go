package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the leader key (space) is written in sequences: "SPC s".
const leaderSeq = "SPC"

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty means every mode
}

func (b binding) in(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands. Single keys use Bubble Tea
// names ("q", "esc", "shift+tab"); leader sequences are written "SPC s".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq without a hint.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq for every mode with a hint.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq. Its hint is only offered in modes; the
// command itself runs in any mode.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[canonical(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[canonical(seq)].cmd
}

// HasPrefix reports whether a longer sequence starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := canonical(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that may follow prefix in mode ("" means the
// bare leader), mapped to their descriptions. Keys that open a further level
// are shown as "k…".
func (r *KeybindRegistry) LeaderHints(prefix string, mode AppMode) map[string]string {
	if prefix == "" {
		prefix = leaderSeq
	}
	prefix = canonical(prefix)
	out := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, prefix+" ")
		if !ok || b.cmd == nil || !b.in(mode) {
			continue
		}
		next, _, deeper := strings.Cut(rest, " ")
		switch {
		case deeper || r.HasPrefix(prefix+" "+next):
			out[next] = next + "…"
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// SingleKeyHints returns the described single-key bindings for mode.
func (r *KeybindRegistry) SingleKeyHints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || b.desc == "" || strings.Contains(seq, " ") || !b.in(mode) {
			continue
		}
		out[seq] = b.desc
	}
	return out
}

// canonical rewrites a key or sequence into registry form. Bubble Tea reports
// the space key as " ".
func canonical(seq string) string {
	if seq == " " {
		return leaderSeq
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = leaderSeq
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler dispatches keys to the registry and tracks a pending leader
// sequence.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // sequence typed so far, starting with "SPC"
}

// NewKeyHandler creates a handler over reg with space as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle reports whether msg was consumed and the command to run, if any.
// While a sequence is pending every key is consumed and esc abandons it.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	k := canonical(msg.String())
	if !h.LeaderWaiting {
		if k == leaderSeq {
			h.LeaderWaiting = true
			h.Buffer = []string{leaderSeq}
			return true, nil
		}
		if c := h.Registry.Lookup(k); c != nil {
			return true, c
		}
		return false, nil
	}

	if k == "esc" {
		h.reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, k)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// In leader mode it lists the next level of the pending sequence; otherwise it
// lists the described single-key bindings for the current mode.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		mode:       mode,
	}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	if km.keyHandler != nil && km.keyHandler.LeaderWaiting {
		bindings := hintBindings(km.registry.LeaderHints(strings.Join(km.keyHandler.Buffer, " "), km.mode))
		return append(bindings, key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		))
	}
	return hintBindings(km.registry.SingleKeyHints(km.mode))
}

// FullHelp returns bindings grouped by columns for the full help view:
// single keys first, then the leader bindings.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	var cols [][]key.Binding
	if single := hintBindings(km.registry.SingleKeyHints(km.mode)); len(single) > 0 {
		cols = append(cols, single)
	}
	leader := km.registry.LeaderHints("", km.mode)
	prefixed := make(map[string]string, len(leader))
	for k, d := range leader {
		prefixed["SPC "+k] = d
	}
	if l := hintBindings(prefixed); len(l) > 0 {
		cols = append(cols, l)
	}
	return cols
}

// hintBindings converts hints to key.Binding values sorted by key.
func hintBindings(hints map[string]string) []key.Binding {
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}
