// Package stringx provides string utilities that extend the standard library.
//
// Package: stringx
// Title: Extended String Operations
// Description: Literal multi-separator splitting with byte offsets, escape
//              interpretation for command-line input and a few Unicode-safe
//              helpers used by the calculator front ends.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-12 v0.3.0: SplitAny and InterpretEscapes; case and random helpers removed
//
// SplitAny never compiles its separators into a pattern, so separators such
// as "*", "|" or "." are matched as plain text.
//
//   segs := stringx.SplitAny("1***2*3", []string{"*", "***"})
//   // segs: {"1",0} {"2",4} {"3",6}
package stringx
