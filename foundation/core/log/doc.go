// Package log provides structured logging for strcalc.
//
// Package: log
// Title: strcalc Structured Logging Framework
// Description: Implements a structured logger with levels, persistent context
//              fields, request IDs and pluggable output formats. The logger is
//              integrated with the error package so that structured errors are
//              logged with their code, severity and details.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Dropped async buffering, sorted field output, Discard logger
//
// Usage:
//   import sclog "github.com/msto63/strcalc/foundation/core/log"
//
//   logger := sclog.New().
//     WithLevel(sclog.LevelDebug).
//     WithFormat(sclog.FormatText).
//     WithRequestID("4f1c...")
//
//   logger.Debug("delimiters resolved", sclog.Field("delimiters", []string{";"}))
//
//   timer := logger.StartTimer("calculator.add")
//   sum, err := calc.Add(input)
//   if err != nil {
//     timer.StopWithError(err)
//   } else {
//     timer.WithField("sum", sum).Stop()
//   }
package log
