package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	adapteralert "github.com/renato0307/newfolder/internal/adapters/alert"
	adapterchrome "github.com/renato0307/newfolder/internal/adapters/chrome"
	adapterfs "github.com/renato0307/newfolder/internal/adapters/filesystem"
	"github.com/renato0307/newfolder/internal/config"
	"github.com/renato0307/newfolder/internal/logging"
	"github.com/renato0307/newfolder/internal/ports"
	"github.com/renato0307/newfolder/internal/services"
	"github.com/renato0307/newfolder/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	FolderService *services.FolderService

	// UI
	Alerter     ports.Alerter
	ChromeHook  *adapterchrome.DarkModeHook
	DialogWidth int
	Interactive bool
	Keys        ui.KeyMap
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	var keysConfig config.KeyBindingsConfig
	if settings != nil && settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)
	logging.Logger.Debug("Terminal capability", "interactive", interactive)

	return &Container{
		FolderService: services.NewFolderService(adapterfs.NewOSStore(), settings.GetBaseName()),
		Alerter:       adapteralert.NewAlerter(interactive, os.Stderr),
		ChromeHook:    adapterchrome.NewDarkModeHook(settings.GetTheme()),
		DialogWidth:   settings.GetDialogWidth(),
		Interactive:   interactive,
		Keys:          ui.NewKeyMap(keysConfig),
	}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
