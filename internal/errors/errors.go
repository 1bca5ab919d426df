// Package errors provides sentinel errors and error types for the move
// legality kernel. It defines the common failure conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a malformed or out-of-range board coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidRule indicates a movement rule built with invalid parameters,
	// such as an empty direction set or a non-positive step limit.
	ErrInvalidRule = errors.New("invalid movement rule")
)

// SquareError wraps a coordinate failure with the input that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type SquareError struct {
	Err   error  // The underlying error
	Input string // The textual coordinate that failed to parse (if applicable)
	Col   byte   // The file character, when constructed from components
	Rank  byte   // The rank character, when constructed from components
}

// Error returns a formatted error message including the offending input.
func (e *SquareError) Error() string {
	var loc string
	switch {
	case e.Input != "":
		loc = fmt.Sprintf("square %q", e.Input)
	case e.Col != 0 || e.Rank != 0:
		loc = fmt.Sprintf("square (%c, %c)", e.Col, e.Rank)
	default:
		loc = "square"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// RuleError wraps a movement-rule construction failure with the rule variant
// and the reason the configuration was rejected.
type RuleError struct {
	Err    error  // The underlying error
	Rule   string // The rule variant ("slide", "step", "leap", "pawn")
	Reason string // Why the configuration was rejected
}

// Error returns a formatted error message with the rule variant and reason.
func (e *RuleError) Error() string {
	var parts []string

	if e.Rule != "" {
		parts = append(parts, fmt.Sprintf("%s rule", e.Rule))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "rule error"
}

// Unwrap returns the underlying error.
func (e *RuleError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
