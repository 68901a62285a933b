// Package errors defines shared error types for bean-validation.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType is an enum for failure categories.
type ErrorType string

// Error type constants.
const (
	ErrorTypeArgument      ErrorType = "argument"      // Caller passed an absent or invalid bean
	ErrorTypeConfiguration ErrorType = "configuration" // Constraint declaration is malformed
)

// Error is a local-call failure raised while evaluating constraints.
// It is never used for a failed predicate; those become violations.
type Error struct {
	Type    ErrorType
	Loc     []string // Path to the offending declaration, e.g. ["Member", "zipCode"]
	Message string
	Err     error // Sentinel or underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Type))
	b.WriteString(" error")
	if len(e.Loc) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Loc, "."))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of the given type.
func New(typ ErrorType, loc []string, cause error, format string, args ...any) *Error {
	return &Error{
		Type:    typ,
		Loc:     loc,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// Argument builds an ErrorTypeArgument error.
func Argument(cause error, format string, args ...any) *Error {
	return New(ErrorTypeArgument, nil, cause, format, args...)
}

// Configuration builds an ErrorTypeConfiguration error located at loc.
func Configuration(loc []string, cause error, format string, args ...any) *Error {
	return New(ErrorTypeConfiguration, loc, cause, format, args...)
}

// HasType reports whether err wraps an *Error of the given type.
func HasType(err error, typ ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == typ
}
