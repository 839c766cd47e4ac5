// File: doc.go
// Title: Validation Framework Package Documentation
// Description: Result types and field rules used to check configuration
//              values before they reach the calculator.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-12 v0.2.0: Reduced to results and field rules

/*
Package validation provides a small validation framework.

A ValidationResult collects ValidationErrors. Rules such as Positive, NotEmpty
or OneOf each check one named field and return a result; Combine merges the
results of several rules so that all violations are reported together:

	result := validation.Combine(
		validation.Positive("calculator.upper_bound", cfg.UpperBound),
		validation.OneOf("output.format", cfg.Format, "text", "json", "yaml"),
	)
	if err := result.ToError(); err != nil {
		return err
	}

ToError converts a failed result into a structured error carrying the first
violation's code, field and value, plus the messages of all violations.
*/
package validation
