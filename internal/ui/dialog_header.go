package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/newfolder/internal/theme"
)

// VersionInfo holds version information for display in the dialog header.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderDialogHeader renders the window title line followed by a blank line.
// In dev mode the title carries build information.
//
// NOTE: only the Dialog wrapper calls this, so every dialog gets the same header.
func renderDialogHeader(devMode bool, title string) string {
	line := theme.AppNameStyle.Render(title)
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7] // Short commit hash
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}
	return line + "\n\n"
}

// headerHeight returns the number of terminal rows used by the header
func headerHeight(devMode bool, title string) int {
	return strings.Count(renderDialogHeader(devMode, title), "\n")
}
