package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps application-level keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "tab", "shift+tab", "ctrl+c".
// Keys not bound here fall through to the focused panel.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
	order        []string             // registration order, for help display
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command for all modes.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDescForMode(k, cmd, "", nil)
}

// BindWithDesc registers a key with a description for the help bar.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeKey(k)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	n := normalizeKey(k)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is false the key should be forwarded to the focused panel.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if c := r.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// Bindings returns described bindings that apply in mode, in registration
// order, for rendering with bubbles/help. Keys sharing a description are
// merged into one entry.
func (r *KeybindRegistry) Bindings(mode AppMode) []key.Binding {
	var (
		out   []key.Binding
		index = make(map[string]int)
		keys  [][]string
	)
	for _, k := range r.order {
		desc, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if i, seen := index[desc]; seen {
			keys[i] = append(keys[i], k)
			continue
		}
		index[desc] = len(keys)
		keys = append(keys, []string{k})
	}
	for _, ks := range keys {
		desc := r.descriptions[ks[0]]
		out = append(out, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), desc),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeKey converts alternate spellings to tea's KeyMsg.String() form.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" || k == "space" {
		return " "
	}
	return k
}
