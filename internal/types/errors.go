package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for Pathfinder errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Catalog error codes
const (
	CATALOG_LOAD_FAILED  ErrorCode = "CATALOG_LOAD_FAILED"
	CATALOG_PARSE_FAILED ErrorCode = "CATALOG_PARSE_FAILED"
	PROGRAM_NOT_FOUND    ErrorCode = "PROGRAM_NOT_FOUND"
	COSTMODEL_INVALID    ErrorCode = "COSTMODEL_INVALID"
)

// Request error codes
const (
	REQUEST_INVALID ErrorCode = "REQUEST_INVALID"
)

// Advisor error codes
const (
	ADVISOR_VALIDATION_FAILED ErrorCode = "ADVISOR_VALIDATION_FAILED"
	ADVISOR_STEP_BUDGET       ErrorCode = "ADVISOR_STEP_BUDGET"
)

// PathfinderError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints for error
// handling logic.
type PathfinderError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *PathfinderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *PathfinderError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a PathfinderError with the same Code.
func (e *PathfinderError) Is(target error) bool {
	var pfErr *PathfinderError
	if errors.As(target, &pfErr) {
		return e.Code == pfErr.Code
	}
	return false
}

// IsErrorCode reports whether err (or anything it wraps) is a PathfinderError
// carrying the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var pfErr *PathfinderError
	if errors.As(err, &pfErr) {
		return pfErr.Code == code
	}
	return false
}

// NewError creates a new non-retryable PathfinderError with the given code and message.
func NewError(code ErrorCode, message string) *PathfinderError {
	return &PathfinderError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable PathfinderError with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *PathfinderError {
	return &PathfinderError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable PathfinderError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *PathfinderError {
	return &PathfinderError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}
