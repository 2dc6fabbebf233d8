// Package caseerrors provides structured error types for nextcase.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a malformed identifier apart from a
// bad file location or an invalid option.
//
// # Error Categories
//
//   - ParseError: an identifier could not be split into words
//   - LocationError: a line or column range does not address the file
//   - ConfigError: invalid configuration or command-line input
//
// # Usage with errors.Is
//
//	words, err := casing.Camel.Parse("count")
//	if errors.Is(err, caseerrors.ErrMalformedCamel) {
//	    // identifier has no leading uppercase letter
//	}
package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNoMatch indicates an identifier belongs to no supported case style.
	// The engine reports this as a boolean result; the sentinel exists for
	// callers that need to surface the outcome as an error.
	ErrNoMatch = errors.New("no matching case style")

	// ErrParse indicates an identifier could not be parsed into words.
	ErrParse = errors.New("parse error")

	// ErrMalformedCamel indicates camel parsing found no word to extend.
	ErrMalformedCamel = errors.New("malformed camel case identifier")

	// ErrLocation indicates a line/column location outside the file.
	ErrLocation = errors.New("location error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to split an identifier into words.
type ParseError struct {
	// Style is the name of the case style that attempted the parse
	Style string
	// Identifier is the input that failed to parse
	Identifier string
	// Position is the 0-indexed rune offset of the failure within Identifier
	Position int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Style != "" {
		msg = e.Style + " " + msg
	}
	if e.Identifier != "" {
		msg += fmt.Sprintf(" in %q at position %d", e.Identifier, e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrParse, and ErrMalformedCamel when the camel style failed.
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	return target == ErrMalformedCamel && e.Style == "camel"
}

// LocationError represents a line/column range that cannot be applied to a file.
type LocationError struct {
	// Path is the file path, if known
	Path string
	// Line is the requested 1-indexed line number
	Line int
	// StartColumn is the requested 1-indexed start column
	StartColumn int
	// EndColumn is the requested 1-indexed end column
	EndColumn int
	// Message describes what is wrong with the location
	Message string
}

// Error returns a human-readable error message.
func (e *LocationError) Error() string {
	msg := "location error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	msg += fmt.Sprintf(" at line %d, columns %d-%d", e.Line, e.StartColumn, e.EndColumn)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as LocationError has no underlying cause.
func (e *LocationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *LocationError) Is(target error) bool {
	return target == ErrLocation
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
