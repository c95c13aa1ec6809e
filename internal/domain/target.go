package domain

import (
	"path/filepath"
	"strings"
)

const (
	longPathPrefix    = `\\?\`
	longUNCPathPrefix = `\\?\UNC\`
)

// StripQuotes removes a single pair of matching surrounding quotes.
// File managers sometimes pass the target directory quoted.
func StripQuotes(arg string) string {
	if len(arg) < 2 {
		return arg
	}
	first, last := arg[0], arg[len(arg)-1]
	if first == last && (first == '"' || first == '\'') {
		return arg[1 : len(arg)-1]
	}
	return arg
}

// DisplayPath normalizes a target path for the read-only path field.
// The result is only meant to be shown; filesystem calls keep the original path.
func DisplayPath(path string) string {
	if path == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(path, longUNCPathPrefix):
		path = `\\` + path[len(longUNCPathPrefix):]
	case strings.HasPrefix(path, longPathPrefix):
		path = path[len(longPathPrefix):]
	}

	return filepath.Clean(filepath.FromSlash(path))
}
