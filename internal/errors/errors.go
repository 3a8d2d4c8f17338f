// Package errors defines the structured errors reported to the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes.
const (
	ErrConfig   = "CONFIG"
	ErrNetwork  = "NETWORK"
	ErrTerminal = "TERMINAL"
)

// Error carries a code, a one-line message, an optional hint on how to fix
// it, and the underlying cause. It prints as:
//
//	✗ <message>
//
//	  <cause>
//
//	  <suggestion>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an Error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is, or wraps, an Error with the given code.
func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
