// File: rules.go
// Title: Field Rules
// Description: Ready-made checks for named fields: positivity, presence,
//              membership in a set and forbidden characters.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"strings"

	scerror "github.com/msto63/strcalc/foundation/core/error"
)

// Positive requires n > 0
func Positive(field string, n int) ValidationResult {
	if n > 0 {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(scerror.CodeValueOutOfRange, field, "must be positive", n)
}

// NotEmpty requires a non-empty string
func NotEmpty(field, s string) ValidationResult {
	if s != "" {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(scerror.CodeValidationFailed, field, "must not be empty", s)
}

// OneOf requires s to equal one of allowed
func OneOf(field, s string, allowed ...string) ValidationResult {
	for _, a := range allowed {
		if s == a {
			return NewValidationResult()
		}
	}
	r := NewValidationErrorWithField(scerror.CodeInvalidFormat, field,
		fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")), s)
	r.Errors[0].Expected = allowed
	return r
}

// ExcludesAny rejects strings containing any of chars
func ExcludesAny(field, s, chars string) ValidationResult {
	if !strings.ContainsAny(s, chars) {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(scerror.CodeInvalidFormat, field,
		fmt.Sprintf("must not contain any of %q", chars), s)
}

// Check wraps an arbitrary error-returning check for field; a non-nil
// error becomes a violation with code and the error text as message
func Check(field string, value interface{}, code scerror.Code, err error) ValidationResult {
	if err == nil {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(code, field, err.Error(), value)
}
