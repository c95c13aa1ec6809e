package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/newfolder/internal/config"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Confirm))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Cancel))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, keys.FocusNext))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, keys.FocusPrev))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.ForceQuit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys.Activate))
}

func TestNewKeyMap_CustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"confirm": {"ctrl+s"}})

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Confirm))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Confirm))
	assert.Equal(t, "ctrl+s", keys.Confirm.Help().Key)
	// Untouched bindings keep their defaults
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Cancel))
}

func TestGetValidKeyNames_SortedAndComplete(t *testing.T) {
	assert.Equal(t, []string{"cancel", "confirm", "focus_next", "focus_prev", "force_quit"}, GetValidKeyNames())
	assert.Nil(t, GetKeyDefinition("archive"))
	assert.NoError(t, config.KeyBindingsConfig{"cancel": {"q"}}.Validate(GetValidKeyNames()))
}
