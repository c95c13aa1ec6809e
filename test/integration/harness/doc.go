// Package harness provides utilities for integration testing the newfolder CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - NEWFOLDER_HOME: Isolated per test (temp directory)
//   - NEWFOLDER_DEBUG: Disabled to reduce noise
//   - HOME: Points at a per-test directory unless removed with UnsetEnv
package harness
