// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     calculator
// Description: Delimiter header resolution and stripping
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"strings"
)

const (
	headerPrefix = "//"

	// LineSeparator always separates numbers, header or not
	LineSeparator = "\n"
)

// Header is the resolved delimiter declaration of an input.
type Header struct {
	// Delimiters are the declared delimiters, or the default one
	Delimiters []string
	// Spec is the raw text between "//" and the newline
	Spec string
	// Present reports whether the input carried a header line
	Present bool
	// BodyOffset is the byte offset of the body in the input
	BodyOffset int
}

// Separators returns the delimiters plus the implicit line separator.
func (h Header) Separators() []string {
	seps := make([]string, 0, len(h.Delimiters)+1)
	seps = append(seps, h.Delimiters...)
	return append(seps, LineSeparator)
}

// ParseHeader resolves the delimiters of input and returns them together with
// the body that follows the header. Inputs without a "//" prefix use
// defaultDelimiter and are returned unchanged as body.
func ParseHeader(input, defaultDelimiter string) (Header, string, error) {
	if !strings.HasPrefix(input, headerPrefix) {
		return Header{Delimiters: []string{defaultDelimiter}}, input, nil
	}

	nl := strings.Index(input, LineSeparator)
	if nl < 0 {
		return Header{}, "", newMalformedHeaderError(input, "missing newline after header")
	}

	line := input[:nl]
	spec := line[len(headerPrefix):]
	delimiters, err := parseSpec(line, spec)
	if err != nil {
		return Header{}, "", err
	}

	header := Header{
		Delimiters: delimiters,
		Spec:       spec,
		Present:    true,
		BodyOffset: nl + len(LineSeparator),
	}
	return header, input[header.BodyOffset:], nil
}

// parseSpec turns "[a][bb]" into {"a", "bb"} and any other non-empty spec
// into a single delimiter.
func parseSpec(line, spec string) ([]string, error) {
	if spec == "" {
		return nil, newMalformedHeaderError(line, "no delimiter declared")
	}
	if spec[0] != '[' {
		return []string{spec}, nil
	}

	var delimiters []string
	rest := spec
	for rest != "" {
		if rest[0] != '[' {
			return nil, newMalformedHeaderError(line, "unexpected text after bracket group")
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, newMalformedHeaderError(line, "unbalanced brackets")
		}
		if end == 1 {
			return nil, newMalformedHeaderError(line, "empty bracket group")
		}
		delimiters = append(delimiters, rest[1:end])
		rest = rest[end+1:]
	}
	return delimiters, nil
}
