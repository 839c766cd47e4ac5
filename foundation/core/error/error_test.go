// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata handling.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Adjusted to the reduced field set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewStackTraceContainsCaller(t *testing.T) {
	err := New("boom")
	frames := err.StackTrace()
	if len(frames) == 0 {
		t.Fatal("no frames captured")
	}
	found := false
	for _, f := range frames {
		if strings.HasSuffix(f.Function, "TestNewStackTraceContainsCaller") {
			found = true
		}
		if strings.HasSuffix(f.Function, "captureStackTrace") {
			t.Errorf("stack trace includes internal frame %q", f.Function)
		}
	}
	if !found {
		t.Error("stack trace does not contain the calling test")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("bad header").WithCode(CodeMalformedHeader),
			message:  "add failed",
			wantMsg:  "add failed: bad header",
			wantCode: CodeMalformedHeader,
		},
		{
			name:     "wrap fmt-wrapped structured error",
			err:      fmt.Errorf("outer: %w", New("neg").WithCode(CodeNegativeNumber)),
			message:  "add failed",
			wantMsg:  "add failed: outer: neg",
			wantCode: CodeNegativeNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is(wrapped, original) = false")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("negatives").WithCode(CodeNegativeNumber).WithDetail("negatives", []int{-1})
	outer := Wrap(inner, "evaluation failed").WithDetail("input", "-1")

	details := outer.Details()
	if _, ok := details["negatives"]; !ok {
		t.Error("wrapped error lost inner detail")
	}
	if details["input"] != "-1" {
		t.Errorf("details[input] = %v, want -1", details["input"])
	}
	if _, ok := inner.Details()["input"]; ok {
		t.Error("outer detail leaked into inner error")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNegativeNumber, SeverityLow},
		{CodeInvalidNumber, SeverityLow},
		{CodeMalformedHeader, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidNumber)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCode(t *testing.T) {
	inner := New("neg").WithCode(CodeNegativeNumber)
	outer := Wrap(inner, "outer").WithCode(CodeInvalidInput)

	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode(outer, INVALID_INPUT) = false")
	}
	if !HasCode(outer, CodeNegativeNumber) {
		t.Error("HasCode should find codes further down the chain")
	}
	if HasCode(outer, CodeConfigError) {
		t.Error("HasCode(outer, CONFIG_ERROR) = true")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode on plain error = true")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) = true")
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("bad").WithCode(CodeInvalidNumber))
	if got := GetCode(err); got != CodeInvalidNumber {
		t.Errorf("GetCode() = %v, want %v", got, CodeInvalidNumber)
	}
	if got := GetSeverity(err); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityLow)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestString(t *testing.T) {
	err := New("negatives not allowed: -2").
		WithCode(CodeNegativeNumber).
		WithOperation("calculator.Add").
		WithRequestID("req-1").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: negatives not allowed: -2",
		"Code: NEGATIVE_NUMBER",
		"Severity: low",
		"Operation: calculator.Add",
		"RequestID: req-1",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "top").
		WithCode(CodeInvalidNumber).
		WithOperation("calculator.parse").
		WithDetail("token", "x")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "INVALID_NUMBER" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "calculator.parse" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	details, ok := decoded["details"].(map[string]interface{})
	if !ok || details["token"] != "x" {
		t.Errorf("details = %v", decoded["details"])
	}
}
