package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/newfolder/internal/domain"
	"github.com/renato0307/newfolder/internal/logging"
	"github.com/renato0307/newfolder/internal/ui"
)

const (
	dialogTitle = "New Folder"
	alertTitle  = "ERROR"
)

// userHomeDir is replaced in tests
var userHomeDir = os.UserHomeDir

// programRunner runs a Bubble Tea model until it quits; replaced in tests
var programRunner = func(model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}

// ResolveTarget turns the optional positional argument into the target directory.
// Surrounding quotes are stripped; everything else is kept as given.
func ResolveTarget(arg string) (string, error) {
	if target := domain.StripQuotes(arg); target != "" {
		return target, nil
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		logging.Logger.Error("Home directory unavailable", "error", err)
		if err == nil {
			err = errors.New("empty home directory")
		}
		return "", fmt.Errorf("%w: %w", domain.ErrHomeDirUnavailable, err)
	}
	return home, nil
}

// Run resolves the target, shows the dialog and returns its outcome.
// A non-nil error is fatal and must be reported before exiting.
func (c *CLI) Run() (domain.Outcome, error) {
	target, err := ResolveTarget(c.Target)
	if err != nil {
		return domain.OutcomeFailed, err
	}
	logging.Logger.Info("Target directory resolved", "target", target)

	service := c.Container.FolderService
	name, err := service.ResolveName(target)
	if err != nil {
		// Creation stays authoritative and will surface the real OS error
		logging.Logger.Warn("Falling back to base name", "error", err)
		name = service.BaseName()
	}
	logging.Logger.Info("Suggested folder name", "name", name)

	if !c.Container.Interactive {
		return domain.OutcomeFailed, fmt.Errorf("UI error: %w", domain.ErrNoTerminal)
	}

	form := ui.NewFolderForm(service, target, name, c.Container.Keys, c.Container.DialogWidth)
	dialog := ui.NewDialog(dialogTitle, form, c.Dev, c.Container.ChromeHook.Apply)

	logging.Logger.Debug("Starting dialog")
	if err := programRunner(dialog); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logging.Logger.Info("Dialog killed, treating as cancel")
			return domain.OutcomeCancelled, nil
		}
		logging.Logger.Error("TUI program error", "error", err)
		return domain.OutcomeFailed, fmt.Errorf("UI error: %w", err)
	}

	result := form.Result()
	logging.Logger.Info("Dialog closed", "outcome", result.Outcome.String(), "path", result.Path)
	if result.Outcome == domain.OutcomeFailed {
		return result.Outcome, result.Error
	}
	return result.Outcome, nil
}

// ExitCode maps the outcome of a run to the process exit code
func ExitCode(outcome domain.Outcome, err error) int {
	if err != nil || outcome == domain.OutcomeFailed {
		return 1
	}
	return 0
}

// ReportFatal shows err in the blocking error dialog
func (c *CLI) ReportFatal(err error) {
	if c.Container == nil || c.Container.Alerter == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if alertErr := c.Container.Alerter.Alert(alertTitle, err.Error()); alertErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
