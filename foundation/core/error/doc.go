// Package error provides structured error handling for strcalc.
//
// Package: error
// Title: strcalc Error Handling Framework
// Description: Implements a structured error type carrying an error code, a
//              severity, the failing operation and free-form details. Every
//              failure path of the calculator, the configuration loader and the
//              CLI is expressed through this type so that callers can branch on
//              codes and loggers can emit the metadata.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced to the calculator code set, dropped i18n keys
//
// Usage:
//   import scerror "github.com/msto63/strcalc/foundation/core/error"
//
//   err := scerror.New("negatives not allowed: -2").
//     WithCode(scerror.CodeNegativeNumber).
//     WithDetail("negatives", []int{-2}).
//     WithOperation("calculator.Add")
//
//   if scerror.HasCode(err, scerror.CodeNegativeNumber) {
//     // reject input
//   }
package error
