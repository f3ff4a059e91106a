package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// HelpKey replaces the first key in the footer, e.g. "1-6".
	HelpKey string
	// Hidden bindings still match but are left out of the footer.
	Hidden bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// HelpBindings are the footer entries for scope: scope-specific bindings
// first, then wildcard ones, skipping hidden entries.
func (r *KeyRegistry) HelpBindings(scope string) []KeyBinding {
	local := make([]KeyBinding, 0, len(r.bindings))
	global := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if b.Hidden || len(b.Keys) == 0 {
			continue
		}
		if slices.Contains(b.Scopes, "*") || len(b.Scopes) == 0 {
			global = append(global, b)
		} else {
			local = append(local, b)
		}
	}
	return append(local, global...)
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	if k == " " || strings.EqualFold(strings.TrimSpace(k), "space") {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
