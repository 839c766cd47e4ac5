// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic transformation, partitioning and aggregation helpers.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-12 v0.2.0: Reduced to the helpers in use, Join via strings.Builder

package slicex

import (
	"fmt"
	"strings"
)

// Number is the set of types Sum accepts
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Partition splits the slice into elements matching and not matching the
// predicate, preserving order in both
func Partition[T any](slice []T, predicate func(T) bool) ([]T, []T) {
	if slice == nil || predicate == nil {
		return nil, nil
	}

	var matched, rest []T
	for _, item := range slice {
		if predicate(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// Sum returns the sum of all elements
func Sum[T Number](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}

// Join formats elements with %v and joins them with separator
func Join[T any](slice []T, separator string) string {
	var b strings.Builder
	for i, item := range slice {
		if i > 0 {
			b.WriteString(separator)
		}
		fmt.Fprintf(&b, "%v", item)
	}
	return b.String()
}
