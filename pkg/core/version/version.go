// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     version
// Description: Central version management for the binary and its components
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Application version
	Application = "1.0.0"

	// Component versions
	Calculator = "1.0.0"
	REPL       = "1.0.0"
)

// Set at build time via -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "calculator":
		return Calculator
	case "repl":
		return REPL
	default:
		return Application
	}
}
