// File: validation.go
// Title: Validation Results
// Description: Defines ValidationResult and ValidationError, combines
//              results and converts failed results into structured errors.
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-12 v0.2.0: Codes from the error package, removed context plumbing
// - 2026-10-19 v0.2.1: Removed validator chains

package validation

import (
	"fmt"
	"strings"

	scerror "github.com/msto63/strcalc/foundation/core/error"
)

// ValidationError is a single violation
type ValidationError struct {
	Code     scerror.Code `json:"code"`
	Field    string       `json:"field,omitempty"`
	Message  string       `json:"message"`
	Value    interface{}  `json:"value,omitempty"`
	Expected interface{}  `json:"expected,omitempty"`
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult is the outcome of one or more validations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationErrorWithField creates a failed result for one field
func NewValidationErrorWithField(code scerror.Code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{{
			Code:    code,
			Field:   field,
			Message: message,
			Value:   value,
		}},
	}
}

// FirstError returns the first violation, or nil for a valid result
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns "field: message" for every violation
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.String()
	}
	return messages
}

// ToError converts the result to a structured error, or nil when valid.
// The error carries the first violation; all messages are in the
// "violations" detail.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	first := r.FirstError()
	if first == nil {
		return scerror.New("validation failed").WithCode(scerror.CodeValidationFailed)
	}

	err := scerror.New(first.String()).
		WithCode(first.Code).
		WithDetail("violations", r.ErrorMessages())
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	return fmt.Sprintf("ValidationResult{valid: false, errors: [%s]}", strings.Join(r.ErrorMessages(), "; "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
