package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/newfolder/internal/cmd"
	"github.com/renato0307/newfolder/internal/config"
	"github.com/renato0307/newfolder/internal/ui"
	"github.com/renato0307/newfolder/version"
)

func main() {
	// Set version info for the dialog header
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Version:   version.Version,
	})

	// Load settings from ~/.newfolder/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	kong.Parse(&cli,
		kong.Name("newfolder"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
	)

	outcome, err := cli.Run()
	if err != nil {
		cli.ReportFatal(err)
	}
	os.Exit(cmd.ExitCode(outcome, err))
}
