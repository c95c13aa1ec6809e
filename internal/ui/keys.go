package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/newfolder/internal/config"
)

// KeyMap contains the keyboard shortcuts of the new-folder dialog
type KeyMap struct {
	// Activate presses the focused button; it is not configurable
	Activate  key.Binding
	Cancel    key.Binding
	Confirm   key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	ForceQuit key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "press button"),
		),
		Cancel:    buildBinding("cancel", defaults, customKeys),
		Confirm:   buildBinding("confirm", defaults, customKeys),
		FocusNext: buildBinding("focus_next", defaults, customKeys),
		FocusPrev: buildBinding("focus_prev", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
