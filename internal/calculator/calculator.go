// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     calculator
// Description: Adder pipeline: header, tokens, validation, reduction
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"strconv"

	sclog "github.com/msto63/strcalc/foundation/core/log"
	scslicex "github.com/msto63/strcalc/foundation/utils/slicex"
)

const (
	// DefaultUpperBound is the largest number that still counts towards the sum
	DefaultUpperBound = 1000

	// DefaultDelimiter separates numbers when no header is present
	DefaultDelimiter = ","
)

// Options configure a Calculator
type Options struct {
	UpperBound       int
	DefaultDelimiter string
}

// DefaultOptions returns the kata rules: "," and an upper bound of 1000
func DefaultOptions() Options {
	return Options{
		UpperBound:       DefaultUpperBound,
		DefaultDelimiter: DefaultDelimiter,
	}
}

// Option modifies a Calculator during construction
type Option func(*Calculator)

// WithUpperBound sets the largest number that is still summed.
// A bound below 1 keeps the default.
func WithUpperBound(bound int) Option {
	return func(c *Calculator) {
		if bound > 0 {
			c.opts.UpperBound = bound
		}
	}
}

// WithDefaultDelimiter sets the delimiter used when no header is present.
// An empty delimiter keeps the default.
func WithDefaultDelimiter(delimiter string) Option {
	return func(c *Calculator) {
		if delimiter != "" {
			c.opts.DefaultDelimiter = delimiter
		}
	}
}

// WithOptions replaces all options at once
func WithOptions(opts Options) Option {
	return func(c *Calculator) {
		WithUpperBound(opts.UpperBound)(c)
		WithDefaultDelimiter(opts.DefaultDelimiter)(c)
	}
}

// WithLogger attaches a logger for debug output
func WithLogger(logger *sclog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Calculator evaluates calculator input. It is immutable after New.
type Calculator struct {
	opts   Options
	logger *sclog.Logger
}

// Result is the breakdown of one evaluation
type Result struct {
	Sum int `json:"sum" yaml:"sum"`
	// Numbers holds every parsed number in input order
	Numbers []int `json:"numbers" yaml:"numbers"`
	// Ignored holds the numbers above the upper bound
	Ignored    []int    `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Delimiters []string `json:"delimiters" yaml:"delimiters"`
}

var defaultCalculator = New()

// Add sums input using the default rules
func Add(input string) (int, error) {
	return defaultCalculator.Add(input)
}

// New creates a Calculator with the default options, modified by opts
func New(opts ...Option) *Calculator {
	c := &Calculator{
		opts:   DefaultOptions(),
		logger: sclog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options returns the options in effect
func (c *Calculator) Options() Options {
	return c.opts
}

// Add returns the sum of the numbers in input
func (c *Calculator) Add(input string) (int, error) {
	res, err := c.Evaluate(input)
	if err != nil {
		return 0, err
	}
	return res.Sum, nil
}

// Evaluate runs the full pipeline and returns the breakdown. The empty
// input yields a zero Result without any parsing.
func (c *Calculator) Evaluate(input string) (Result, error) {
	if input == "" {
		return Result{Delimiters: []string{c.opts.DefaultDelimiter}}, nil
	}

	header, body, err := ParseHeader(input, c.opts.DefaultDelimiter)
	if err != nil {
		return Result{}, err
	}
	c.logger.Debug("delimiters resolved", sclog.Fields{
		"delimiters": header.Delimiters,
		"header":     header.Present,
	})

	tokens := Tokenize(body, header.Separators())
	numbers, err := parseTokens(tokens, header.BodyOffset)
	if err != nil {
		return Result{}, err
	}

	if negatives := scslicex.Filter(numbers, isNegative); len(negatives) > 0 {
		return Result{}, newNegativeNumberError(negatives)
	}

	counted, ignored := scslicex.Partition(numbers, c.counts)
	res := Result{
		Sum:        scslicex.Sum(counted),
		Numbers:    numbers,
		Ignored:    ignored,
		Delimiters: header.Delimiters,
	}

	c.logger.Debug("input evaluated", sclog.Fields{
		"tokens":  len(tokens),
		"ignored": len(ignored),
		"sum":     res.Sum,
	})
	return res, nil
}

func (c *Calculator) counts(n int) bool {
	return n <= c.opts.UpperBound
}

func isNegative(n int) bool {
	return n < 0
}

// parseTokens converts every token; offsets in errors are shifted by base so
// they point into the original input.
func parseTokens(tokens []Token, base int) ([]int, error) {
	numbers := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			tok.Offset += base
			return nil, newInvalidNumberError(tok, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
