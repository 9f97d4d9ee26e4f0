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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors. Note that a lookup miss is NOT an error in
	// this codebase; Find returns an empty path for that. These codes
	// cover genuinely broken inputs at the CLI and config layers.
	ErrBaseRoot   ErrorCode = "BASE_ROOT"
	ErrThemeIndex ErrorCode = "THEME_INDEX"
	ErrAppID      ErrorCode = "APP_ID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// IconError represents a structured error with code and details
type IconError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IconError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IconError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *IconError) Is(target error) bool {
	var targetErr *IconError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IconError with the given code and message
func New(code ErrorCode, message string) *IconError {
	return &IconError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IconError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IconError {
	return &IconError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IconError
func Wrap(err error, code ErrorCode, message string) *IconError {
	if err == nil {
		return nil
	}
	return &IconError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IconError {
	if err == nil {
		return nil
	}
	return &IconError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IconError) WithDetail(key string, value interface{}) *IconError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var iconErr *IconError
	if errors.As(err, &iconErr) {
		return iconErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// not an IconError
func GetErrorCode(err error) ErrorCode {
	var iconErr *IconError
	if errors.As(err, &iconErr) {
		return iconErr.Code
	}
	return ErrUnknown
}
