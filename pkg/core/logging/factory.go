// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	sclog "github.com/msto63/strcalc/foundation/core/log"
	"github.com/msto63/strcalc/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name appears as the logger name in every entry
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output defaults to stderr so stdout stays free for results
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives a LoggerConfig from the application configuration
func FromConfig(name string, cfg config.LoggingConfig) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	return lc
}

// NewLogger creates a new foundation logger. Unknown levels fall back to
// info and unknown formats to text.
func NewLogger(cfg LoggerConfig) *sclog.Logger {
	level, err := sclog.ParseLevel(cfg.Level)
	if err != nil {
		level = sclog.LevelInfo
	}

	format, err := sclog.ParseFormat(cfg.Format)
	if err != nil {
		format = sclog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return sclog.NewWithConfig(sclog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// KV converts alternating key-value pairs to fields. Non-string keys and a
// trailing key without value are skipped.
func KV(keysAndValues ...interface{}) sclog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(sclog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
