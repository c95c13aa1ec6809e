package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// DefaultBaseName is the folder name suggested when nothing collides
	DefaultBaseName = "New Folder"
	// DefaultDialogWidth is the dialog width in terminal cells
	DefaultDialogWidth = 60
	// MinDialogWidth is the narrowest dialog that still fits both buttons and labels
	MinDialogWidth = 40
	// DefaultTheme follows the operating system appearance
	DefaultTheme = ThemeAuto
)

// Theme values accepted in settings.json
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings represents the structure of ~/.newfolder/settings.json
type Settings struct {
	BaseName    string            `json:"base_name,omitempty"`
	Debug       *bool             `json:"debug,omitempty"`
	DialogWidth *int              `json:"dialog_width,omitempty"`
	Keys        KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles *int              `json:"max_log_files,omitempty"`
	Theme       string            `json:"theme,omitempty"`
}

// LoadSettings loads settings from $NEWFOLDER_HOME/settings.json (or ~/.newfolder/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// Validate checks value ranges. Key bindings are validated separately
// because the list of valid names lives in the ui package.
func (s *Settings) Validate() error {
	switch s.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme '%s' (expected %s, %s or %s)", s.Theme, ThemeAuto, ThemeDark, ThemeLight)
	}

	if s.DialogWidth != nil && *s.DialogWidth < MinDialogWidth {
		return fmt.Errorf("dialog_width must be at least %d", MinDialogWidth)
	}

	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative")
	}

	return nil
}

// GetBaseName returns the configured base folder name or the default
func (s *Settings) GetBaseName() string {
	if s == nil || s.BaseName == "" {
		return DefaultBaseName
	}
	return s.BaseName
}

// GetDialogWidth returns the configured dialog width or the default
func (s *Settings) GetDialogWidth() int {
	if s == nil || s.DialogWidth == nil {
		return DefaultDialogWidth
	}
	return *s.DialogWidth
}

// GetTheme returns the configured theme or the default
func (s *Settings) GetTheme() string {
	if s == nil || s.Theme == "" {
		return DefaultTheme
	}
	return s.Theme
}
