// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     calculator
// Description: Sums the numbers embedded in a delimited string
// Created:     2026-10-12
// License:     MIT
// ============================================================================

// Package calculator implements the string calculator: it resolves the
// delimiters declared in an optional header, splits the body on them,
// converts every token to an integer, rejects negatives and sums the rest.
//
// Input format:
//
//	//<spec>\n<body>
//
// where <spec> is a single delimiter ("//;\n") or one or more bracket groups
// ("//[***]\n", "//[*][%]\n"). Without a header the body is split on ",".
// Newline always separates numbers. Numbers above the upper bound (1000 by
// default) are ignored; any negative number fails the whole evaluation with a
// *NegativeNumberError listing every negative.
//
// A Calculator holds only immutable options and is safe for concurrent use.
package calculator
