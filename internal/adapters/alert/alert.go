package alert

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/newfolder/internal/logging"
	"github.com/renato0307/newfolder/internal/theme"
)

// Alerter implements ports.Alerter.
// On a terminal it shows a blocking huh note that waits for acknowledgement;
// otherwise it writes the message to the fallback writer.
type Alerter struct {
	fallback    io.Writer
	interactive bool
}

// NewAlerter creates a new Alerter
func NewAlerter(interactive bool, fallback io.Writer) *Alerter {
	return &Alerter{
		fallback:    fallback,
		interactive: interactive,
	}
}

// Alert shows message under title and blocks until the user dismisses it
func (a *Alerter) Alert(title, message string) error {
	logging.Logger.Error("Showing alert", "title", title, "message", message)

	if a.interactive {
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewNote().
					Title(title).
					Description(message).
					Next(true).
					NextLabel("OK"),
			),
		).WithTheme(huh.ThemeCharm()).Run()
		if err == nil {
			return nil
		}
		// Fall through so the message is never lost
		logging.Logger.Warn("Alert dialog failed, using fallback", "error", err)
	}

	return a.writeFallback(title, message)
}

func (a *Alerter) writeFallback(title, message string) error {
	if a.fallback == nil {
		return nil
	}
	_, err := fmt.Fprintf(a.fallback, "%s %s\n", theme.ErrorStyle.Render(title+":"), message)
	return err
}
