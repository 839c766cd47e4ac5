// Package slicex provides generic slice helpers.
//
// Package: slicex
// Title: Generic Slice Utilities
// Description: Functional-style helpers (Filter, Map, Partition, Sum, Join)
//              used by the calculator's validation and reduction steps.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-12 v0.2.0: Reduced to the helpers in use
package slicex
