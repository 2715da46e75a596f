package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Graph errors
	ErrDuplicateNode ErrorCode = "DUPLICATE_NODE"
	ErrUnknownNode   ErrorCode = "UNKNOWN_NODE"
	ErrCycle         ErrorCode = "CYCLE"

	// Repository build errors
	ErrResourceDefinition ErrorCode = "RESOURCE_DEFINITION"
	ErrResourceConflict   ErrorCode = "RESOURCE_CONFLICT"
	ErrFilesystem         ErrorCode = "FILESYSTEM"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Pack errors
	ErrPackInvalid ErrorCode = "PACK_INVALID"
	ErrPackAccess  ErrorCode = "PACK_ACCESS"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// OverlayError represents a structured error with code and details
type OverlayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OverlayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OverlayError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OverlayError) Is(target error) bool {
	var targetErr *OverlayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OverlayError with the given code and message
func New(code ErrorCode, message string) *OverlayError {
	return &OverlayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OverlayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OverlayError {
	return &OverlayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OverlayError
func Wrap(err error, code ErrorCode, message string) *OverlayError {
	if err == nil {
		return nil
	}
	return &OverlayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OverlayError {
	if err == nil {
		return nil
	}
	return &OverlayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OverlayError) WithDetail(key string, value interface{}) *OverlayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OverlayError) WithDetails(details map[string]interface{}) *OverlayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var overlayErr *OverlayError
	if errors.As(err, &overlayErr) {
		return overlayErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OverlayError
func GetErrorCode(err error) ErrorCode {
	var overlayErr *OverlayError
	if errors.As(err, &overlayErr) {
		return overlayErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OverlayError
func GetErrorDetails(err error) map[string]interface{} {
	var overlayErr *OverlayError
	if errors.As(err, &overlayErr) {
		return overlayErr.Details
	}
	return nil
}
