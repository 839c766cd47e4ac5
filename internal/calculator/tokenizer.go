// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     calculator
// Description: Literal-substring tokenization of the input body
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	scstringx "github.com/msto63/strcalc/foundation/utils/stringx"
)

// Token is one number candidate of the body.
type Token struct {
	Text string
	// Offset is the byte offset of Text in the string passed to Tokenize
	Offset int
	// Index is the position of the token among all tokens
	Index int
}

// Tokenize splits body on every separator, matched literally, and drops the
// empty pieces left by adjacent, leading or trailing separators.
func Tokenize(body string, separators []string) []Token {
	segments := scstringx.SplitAnyNonEmpty(body, separators)
	tokens := make([]Token, len(segments))
	for i, seg := range segments {
		tokens[i] = Token{Text: seg.Text, Offset: seg.Offset, Index: i}
	}
	return tokens
}
