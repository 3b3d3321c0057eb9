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
	ErrIO           ErrorCode = "IO_ERROR"

	// Path errors
	ErrPathNotUnderRoot ErrorCode = "PATH_NOT_UNDER_ROOT"
	ErrSourceMissing    ErrorCode = "SOURCE_MISSING"
	ErrAlreadyExists    ErrorCode = "ALREADY_EXISTS"

	// Symlink errors
	ErrLinkPathOccupied ErrorCode = "LINK_PATH_OCCUPIED"
	ErrNotASymlink      ErrorCode = "NOT_A_SYMLINK"
	ErrMissingLink      ErrorCode = "MISSING_LINK"

	// Registry errors
	ErrDuplicateLinkPath ErrorCode = "DUPLICATE_LINK_PATH"
	ErrNotTracked        ErrorCode = "NOT_TRACKED"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
)

// StowError represents a structured error with code and details
type StowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StowError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StowError) Is(target error) bool {
	var targetErr *StowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StowError with the given code and message
func New(code ErrorCode, message string) *StowError {
	return &StowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StowError {
	return &StowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StowError
func Wrap(err error, code ErrorCode, message string) *StowError {
	if err == nil {
		return nil
	}
	return &StowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StowError {
	if err == nil {
		return nil
	}
	return &StowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StowError) WithDetail(key string, value interface{}) *StowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stowErr *StowError
	if errors.As(err, &stowErr) {
		return stowErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StowError
func GetErrorCode(err error) ErrorCode {
	var stowErr *StowError
	if errors.As(err, &stowErr) {
		return stowErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StowError
func GetErrorDetails(err error) map[string]interface{} {
	var stowErr *StowError
	if errors.As(err, &stowErr) {
		return stowErr.Details
	}
	return nil
}
