// File: filex.go
// Title: Core File Utilities
// Description: Implements existence checks, bounded reads and candidate
//              lookup for configuration and input files.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-12 v0.2.0: Added ReadStringLimit and FirstFile, removed the rest

package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge is returned by ReadStringLimit for files above the limit
var ErrTooLarge = errors.New("file too large")

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ReadStringLimit reads at most limit bytes of a file; larger files fail
// with ErrTooLarge. A limit <= 0 means no limit.
func ReadStringLimit(path string, limit int64) (string, error) {
	if limit <= 0 {
		content, err := ReadFile(path)
		return string(content), err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if int64(len(content)) > limit {
		return "", fmt.Errorf("%s exceeds %d bytes: %w", path, limit, ErrTooLarge)
	}
	return string(content), nil
}

// FirstFile returns the first candidate that is a regular file, or ""
func FirstFile(candidates ...string) string {
	for _, c := range candidates {
		if c != "" && IsFile(c) {
			return c
		}
	}
	return ""
}

// Ext returns the lower-cased file extension including the dot
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
