// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	"context"
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures so the entrypoint can pick an exit status
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeIO is for open, read, write, flush and close failures
	ErrorCodeIO

	// ErrorCodeDecode is for rows that do not match the expected table schema
	ErrorCodeDecode

	// ErrorCodeValidation is for invalid configuration
	ErrorCodeValidation

	// ErrorCodeCanceled is for runs stopped by their context
	ErrorCodeCanceled
)

// String renders the code for logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeIO:
		return "io"
	case ErrorCodeDecode:
		return "decode"
	case ErrorCodeValidation:
		return "validation"
	case ErrorCodeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Exit statuses follow sysexits.h where one fits
const (
	exitUnknown    = 1
	exitDecode     = 65 // EX_DATAERR
	exitIO         = 74 // EX_IOERR
	exitValidation = 78 // EX_CONFIG
	exitCanceled   = 130
)

// ExitCodeOf turns an ErrorCode into a process exit status
func ExitCodeOf(c ErrorCode) int {
	switch c {
	case ErrorCodeIO:
		return exitIO
	case ErrorCodeDecode:
		return exitDecode
	case ErrorCodeValidation:
		return exitValidation
	case ErrorCodeCanceled:
		return exitCanceled
	default:
		return exitUnknown
	}
}

// ExitCode returns the exit status for any error; nil maps to 0
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitCodeOf(CodeOf(err))
}

// Error is the structured error type with wrapping and metadata
// msg is human facing; code is machine facing
// field is optional (column or option name); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown.
// Context cancellation anywhere in the chain reports Canceled
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return ErrorCodeCanceled
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// IOf returns an I/O error
func IOf(format string, a ...any) error { return Newf(ErrorCodeIO, format, a...) }

// Decodef returns a decode error
func Decodef(format string, a ...any) error { return Newf(ErrorCodeDecode, format, a...) }
