package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for the leader, "SPC w"
// for leader then w. Single keys: "tab", "f", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence with a description for the help line.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether any binding starts with seq plus a space,
// i.e. more keys follow.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns "key  description" lines for sequences under the
// given prefix, sorted for stable display.
func (r *KeybindRegistry) LeaderHints(prefix string) []string {
	p := normalizeSeq(prefix) + " "
	var out []string
	for seq := range r.bindings {
		if !strings.HasPrefix(seq, p) {
			continue
		}
		rest := strings.TrimPrefix(seq, p)
		desc := r.descriptions[seq]
		if desc == "" {
			desc = seq
		}
		out = append(out, rest+"  "+desc)
	}
	sort.Strings(out)
	return out
}

// normalizeSeq converts tea key strings to the canonical format.
// "space" or " " -> "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	buffer        []string
}

// NewKeyHandler creates a handler with SPC as leader. Bubble Tea reports
// space as " ", not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd). A consumed key must
// not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	s := msg.String()

	if s == "esc" && h.LeaderWaiting {
		h.reset()
		return true, nil
	}

	if !h.LeaderWaiting {
		if s == " " {
			h.LeaderWaiting = true
			h.buffer = []string{"SPC"}
			return true, nil
		}
		if cmd := h.Registry.Lookup(s); cmd != nil {
			return true, cmd
		}
		return false, nil
	}

	h.buffer = append(h.buffer, normalizeSeq(s))
	seq := strings.Join(h.buffer, " ")
	if cmd := h.Registry.Lookup(seq); cmd != nil {
		h.reset()
		return true, cmd
	}
	if h.Registry.HasPrefix(seq) {
		return true, nil // wait for more keys
	}
	h.reset()
	return true, nil
}

// Buffer returns the pending leader sequence for hint display.
func (h *KeyHandler) Buffer() string {
	return strings.Join(h.buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.buffer = nil
}
