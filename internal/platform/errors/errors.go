// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	"context"
	stderrs "errors"
	"fmt"
)

// ErrorCode defines supported error codes used across the CLI
// Values are stable because they drive process exit codes; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered at the command boundary
	ErrorCodePanic

	// ErrorCodeInvalidArgument is for malformed or conflicting command line flags
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for option values outside their allowed range
	ErrorCodeValidation

	// ErrorCodeUnknownLanguage is for language codes the registry does not know
	ErrorCodeUnknownLanguage

	// ErrorCodeInputRead is for input streams that could not be read to completion
	ErrorCodeInputRead

	// ErrorCodeDetection is for failures inside the detection engine
	ErrorCodeDetection

	// ErrorCodeCanceled is for runs interrupted by the caller
	ErrorCodeCanceled
)

// Process exit codes
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUsage           = 2
	ExitUnknownLanguage = 3
	ExitInputRead       = 4
	ExitCanceled        = 130
)

// ExitCodeOf turns an ErrorCode into a process exit code
func ExitCodeOf(c ErrorCode) int {
	switch c {
	case ErrorCodeInvalidArgument, ErrorCodeValidation:
		return ExitUsage
	case ErrorCodeUnknownLanguage:
		return ExitUnknownLanguage
	case ErrorCodeInputRead:
		return ExitInputRead
	case ErrorCodeCanceled:
		return ExitCanceled
	case ErrorCodeDetection, ErrorCodePanic, ErrorCodeUnknown:
		return ExitFailure
	default:
		return ExitFailure
	}
}

// String returns a short label used in log fields
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodePanic:
		return "panic"
	case ErrorCodeInvalidArgument:
		return "invalid_argument"
	case ErrorCodeValidation:
		return "validation"
	case ErrorCodeUnknownLanguage:
		return "unknown_language_code"
	case ErrorCodeInputRead:
		return "input_read_failure"
	case ErrorCodeDetection:
		return "detection"
	case ErrorCodeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human facing; code is machine facing
// field is optional (the offending flag or value); op is optional operation tag
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

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
// Foreign context cancellation maps to Canceled
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	if stderrs.Is(err, context.Canceled) {
		return ErrorCodeCanceled
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ExitCode returns the mapped process exit code for any error, ExitOK for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitCodeOf(CodeOf(err))
}

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

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// UnknownLanguagef returns an unknown language code error with the code attached as field
func UnknownLanguagef(code string, format string, a ...any) error {
	return &Error{code: ErrorCodeUnknownLanguage, msg: fmt.Sprintf(format, a...), field: code}
}

// InputReadf returns an input read failure
func InputReadf(format string, a ...any) error { return Newf(ErrorCodeInputRead, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
