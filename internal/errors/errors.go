// Package errors provides the coded error type shared by the analysis pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that did not come from this module.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidInput marks geometry, rigidity or load values out of domain.
	// Raised before any solve step runs.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeMalformedSystem marks an assembled system whose equation count
	// differs from its unknown count.
	CodeMalformedSystem Code = "MALFORMED_SYSTEM"

	// CodeUnstableStructure marks a singular or near-singular coefficient matrix.
	CodeUnstableStructure Code = "UNSTABLE_STRUCTURE"

	// CodeNumericDegeneracy marks a solution that fails the equilibrium self-check.
	CodeNumericDegeneracy Code = "NUMERIC_DEGENERACY"
)

// Sentinels for errors.Is comparisons. Matching is by code only.
var (
	ErrInvalidInput      = New(CodeInvalidInput, "invalid input")
	ErrMalformedSystem   = New(CodeMalformedSystem, "malformed system")
	ErrUnstableStructure = New(CodeUnstableStructure, "no unique solution")
	ErrNumericDegeneracy = New(CodeNumericDegeneracy, "numeric degeneracy")
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Additional context (member label, field name, ...)
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithMetadata creates a domain error carrying metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
