// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     repl
// Description: Message types for evaluations in the REPL
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package repl

import (
	"time"

	"github.com/msto63/strcalc/internal/calculator"
)

// Entry is one evaluated line in the history pane
type Entry struct {
	Input    string        // the line as typed
	Result   calculator.Result
	Err      error
	Duration time.Duration // evaluation time
}

// evalResultMsg is sent when an evaluation finished
type evalResultMsg struct {
	entry Entry
}
