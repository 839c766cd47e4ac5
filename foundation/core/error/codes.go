// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across strcalc. Codes classify a
//              failure independently of its message so that the CLI can map
//              them to exit codes and loggers can filter on them.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Calculator codes, removed service and database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calculator input
	CodeNegativeNumber  Code = "NEGATIVE_NUMBER"
	CodeInvalidNumber   Code = "INVALID_NUMBER"
	CodeMalformedHeader Code = "MALFORMED_HEADER"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeNegativeNumber, CodeInvalidNumber, CodeMalformedHeader:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Input errors exit with 2, configuration errors with 3, everything else 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration", "validation":
		return 3
	default:
		return 1
	}
}
