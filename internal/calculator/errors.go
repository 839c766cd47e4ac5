// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     calculator
// Description: Typed input errors backed by the structured error type
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"errors"
	"fmt"

	scerror "github.com/msto63/strcalc/foundation/core/error"
	scslicex "github.com/msto63/strcalc/foundation/utils/slicex"
)

// Sentinels for errors.Is checks
var (
	ErrNegativeNumber  = errors.New("negative number")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrMalformedHeader = errors.New("malformed delimiter header")
)

// NegativeNumberError reports every negative number found in the input, in
// input order.
type NegativeNumberError struct {
	Values []int
	err    *scerror.Error
}

func newNegativeNumberError(values []int) *NegativeNumberError {
	msg := "negatives not allowed: " + scslicex.Join(values, ",")
	return &NegativeNumberError{
		Values: values,
		err: scerror.New(msg).
			WithCode(scerror.CodeNegativeNumber).
			WithOperation("calculator.validate").
			WithDetail("negatives", values),
	}
}

func (e *NegativeNumberError) Error() string { return e.err.Error() }

// Unwrap exposes the structured error
func (e *NegativeNumberError) Unwrap() error { return e.err }

// Is matches ErrNegativeNumber
func (e *NegativeNumberError) Is(target error) bool { return target == ErrNegativeNumber }

// InvalidNumberError reports a token that is not a base-10 integer.
// Offset is the byte offset of the token in the original input.
type InvalidNumberError struct {
	Token  string
	Offset int
	Cause  error
	err    *scerror.Error
}

func newInvalidNumberError(tok Token, cause error) *InvalidNumberError {
	msg := fmt.Sprintf("invalid number %q at offset %d", tok.Text, tok.Offset)
	return &InvalidNumberError{
		Token:  tok.Text,
		Offset: tok.Offset,
		Cause:  cause,
		err: scerror.New(msg).
			WithCode(scerror.CodeInvalidNumber).
			WithOperation("calculator.parse").
			WithDetail("token", tok.Text).
			WithDetail("offset", tok.Offset),
	}
}

func (e *InvalidNumberError) Error() string { return e.err.Error() }

// Unwrap exposes the structured error and the conversion error
func (e *InvalidNumberError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.Cause}
}

// Is matches ErrInvalidNumber
func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// MalformedHeaderError reports a delimiter header that cannot be parsed.
type MalformedHeaderError struct {
	Header string
	Reason string
	err    *scerror.Error
}

func newMalformedHeaderError(header, reason string) *MalformedHeaderError {
	msg := fmt.Sprintf("malformed delimiter header %q: %s", header, reason)
	return &MalformedHeaderError{
		Header: header,
		Reason: reason,
		err: scerror.New(msg).
			WithCode(scerror.CodeMalformedHeader).
			WithOperation("calculator.parseHeader").
			WithDetail("header", header).
			WithDetail("reason", reason),
	}
}

func (e *MalformedHeaderError) Error() string { return e.err.Error() }

// Unwrap exposes the structured error
func (e *MalformedHeaderError) Unwrap() error { return e.err }

// Is matches ErrMalformedHeader
func (e *MalformedHeaderError) Is(target error) bool { return target == ErrMalformedHeader }
