// Package errors defines stable error codes for all hellofix failure modes.
// Codes are part of the tool's observable surface: harness scripts match on
// them, so they never change once released.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// TypeMismatch indicates an operand does not support the arithmetic operator
	TypeMismatch ErrorCode = "TYPE_MISMATCH"
	// OpUnknown indicates an unrecognized calculator operation
	OpUnknown ErrorCode = "OP_UNKNOWN"
	// FormatUnsupported indicates an unknown output format was requested
	FormatUnsupported ErrorCode = "FORMAT_UNSUPPORTED"
	// ConfigInvalid indicates the configuration file failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error represents a hellofix error with a stable code and message
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new Error
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// CodeOf extracts the stable code from err, walking the wrap chain.
// Returns InternalError for errors that carry no code.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return InternalError
}
