package chrome

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	dark "github.com/thiagokokada/dark-mode-go"

	"github.com/renato0307/newfolder/internal/config"
	"github.com/renato0307/newfolder/internal/logging"
)

// DarkModeHook aligns the dialog palette with the desktop appearance.
// With the auto theme it asks the OS for its dark-mode preference and only
// acts when the platform can answer; otherwise the terminal default stays.
type DarkModeHook struct {
	detect    func() (bool, error)
	setDark   func(bool)
	themeName string
}

// NewDarkModeHook creates a hook for the configured theme name
func NewDarkModeHook(themeName string) *DarkModeHook {
	return &DarkModeHook{
		detect:    dark.IsDarkMode,
		setDark:   lipgloss.SetHasDarkBackground,
		themeName: themeName,
	}
}

// Apply runs the hook. It matches ui.WindowHook.
func (h *DarkModeHook) Apply() tea.Cmd {
	switch h.themeName {
	case config.ThemeDark:
		h.setDark(true)
	case config.ThemeLight:
		h.setDark(false)
	default:
		isDark, err := h.detect()
		if err != nil {
			logging.Logger.Debug("Dark mode detection unavailable", "error", err)
			return nil
		}
		logging.Logger.Debug("Detected desktop appearance", "dark", isDark)
		h.setDark(isDark)
	}
	return nil
}
