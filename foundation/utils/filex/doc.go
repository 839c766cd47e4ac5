// File: doc.go
// Title: File Utilities Package Documentation
// Description: Existence checks, bounded file reading and path lookup.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Reduced to existence checks, bounded reads and lookup

// Package filex provides small file helpers: existence checks, reading with
// a size limit, and finding the first existing file of a list of candidates
// (as used for configuration file discovery).
package filex
