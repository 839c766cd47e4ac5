// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on stop.
// Version: v0.1.2
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-12 v0.1.1: Success flag for failed operations
// - 2026-10-19 v0.1.2: Duration carried on the entry instead of fields

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed".
// Subsequent calls return 0 and log nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, " completed", nil)
}

// StopWithError stops the timer and logs "<operation> failed" with the
// error's structured context, at the level LogError would use
func (t *Timer) StopWithError(err error) time.Duration {
	level := LevelError
	if err != nil {
		var fields Fields
		level, fields = errorContext(err)
		for k, v := range fields {
			t.fields[k] = v
		}
	}
	t.fields["success"] = false
	return t.finish(level, " failed", err)
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	t.fields["operation"] = t.operation
	t.logger.log(level, t.operation+suffix, err, elapsed, t.fields)

	return elapsed
}
