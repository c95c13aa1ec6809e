package config

import (
	"os"
	"path/filepath"
)

// GetHome returns NEWFOLDER_HOME or the ~/.newfolder default
func GetHome() string {
	home := os.Getenv("NEWFOLDER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".newfolder"
		}
		return filepath.Join(homeDir, ".newfolder")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $NEWFOLDER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
