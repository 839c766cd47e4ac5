// File: split.go
// Title: Literal Multi-Separator Splitting
// Description: Splits a string around any of a set of literal separators and
//              reports the byte offset of every segment.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import (
	"sort"
	"strings"
)

// Segment is a substring of the split input together with its byte offset.
type Segment struct {
	Text   string
	Offset int
}

// SplitAny splits s around every occurrence of any separator in seps.
// Separators are matched as literal text. When several separators match at
// the same position the longest one wins. Empty separators are ignored.
// Empty segments between adjacent separators are kept; use SplitAnyNonEmpty
// to drop them. SplitAny("", seps) returns a single empty segment.
func SplitAny(s string, seps []string) []Segment {
	ordered := longestFirst(seps)
	if len(ordered) == 0 {
		return []Segment{{Text: s, Offset: 0}}
	}

	var segments []Segment
	start := 0
	for i := 0; i < len(s); {
		n := matchAt(s, i, ordered)
		if n == 0 {
			i++
			continue
		}
		segments = append(segments, Segment{Text: s[start:i], Offset: start})
		i += n
		start = i
	}
	return append(segments, Segment{Text: s[start:], Offset: start})
}

// SplitAnyNonEmpty is SplitAny with empty segments removed.
func SplitAnyNonEmpty(s string, seps []string) []Segment {
	all := SplitAny(s, seps)
	result := make([]Segment, 0, len(all))
	for _, seg := range all {
		if seg.Text != "" {
			result = append(result, seg)
		}
	}
	return result
}

// longestFirst returns the unique non-empty separators, longest first.
func longestFirst(seps []string) []string {
	seen := make(map[string]struct{}, len(seps))
	result := make([]string, 0, len(seps))
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		if _, dup := seen[sep]; dup {
			continue
		}
		seen[sep] = struct{}{}
		result = append(result, sep)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return len(result[i]) > len(result[j])
	})
	return result
}

// matchAt returns the length of the first separator matching s at i, or 0.
func matchAt(s string, i int, seps []string) int {
	for _, sep := range seps {
		if strings.HasPrefix(s[i:], sep) {
			return len(sep)
		}
	}
	return 0
}
