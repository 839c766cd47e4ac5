// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is logged at.
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-12 v0.1.1: Code mapping for calculator codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as rejected user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unusable configuration
	SeverityHigh

	// SeverityCritical indicates an error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeNegativeNumber, CodeInvalidNumber, CodeMalformedHeader,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
