package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own
// NEWFOLDER_HOME and HOME.
type TestEnvironment struct {
	HomeDir       string
	NewfolderHome string
	WorkDir       string
	extraEnv      map[string]string
	tb            testing.TB
	unsetEnv      map[string]bool
}

// NewTestEnvironment creates an isolated test environment under a temp directory.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		HomeDir:       filepath.Join(root, "home"),
		NewfolderHome: filepath.Join(root, "newfolder"),
		WorkDir:       filepath.Join(root, "work"),
		extraEnv:      make(map[string]string),
		tb:            tb,
		unsetEnv:      make(map[string]bool),
	}

	for _, dir := range []string{env.HomeDir, env.NewfolderHome, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out NEWFOLDER_* variables and sets:
//   - NEWFOLDER_HOME to the temp directory
//   - NEWFOLDER_DEBUG to empty string (disables debug logging)
//   - HOME to a per-test directory
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := map[string]bool{
		"HOME":            true,
		"NEWFOLDER_DEBUG": true,
		"NEWFOLDER_HOME":  true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}
	for k := range e.unsetEnv {
		overrideKeys[k] = true
	}

	// Filter out existing NEWFOLDER_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "NEWFOLDER_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"NEWFOLDER_HOME="+e.NewfolderHome,
		"NEWFOLDER_DEBUG=",
	)
	if !e.unsetEnv["HOME"] {
		env = append(env, "HOME="+e.HomeDir)
	}

	// Add extra environment variables
	for k, v := range e.extraEnv {
		if e.unsetEnv[k] {
			continue
		}
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// UnsetEnv removes a variable from the environment passed to the binary.
func (e *TestEnvironment) UnsetEnv(key string) {
	e.unsetEnv[key] = true
}

// SettingsPath returns the path of the isolated settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.NewfolderHome, "settings.json")
}

// WriteSettings writes settings as JSON to the isolated settings.json.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
