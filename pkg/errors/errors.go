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

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigSave     ErrorCode = "CONFIG_SAVE"

	// Profile resolution errors
	ErrProfileNotFound      ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileNoPath        ErrorCode = "PROFILE_NO_PATH"
	ErrProfileMultiplePaths ErrorCode = "PROFILE_MULTIPLE_PATHS"
	ErrProfileEmptyPath     ErrorCode = "PROFILE_EMPTY_PATH"
	ErrProfileFileMissing   ErrorCode = "PROFILE_FILE_MISSING"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// NvyError represents a structured error with code and details
type NvyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NvyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NvyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NvyError) Is(target error) bool {
	var targetErr *NvyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NvyError with the given code and message
func New(code ErrorCode, message string) *NvyError {
	return &NvyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NvyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NvyError {
	return &NvyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NvyError
func Wrap(err error, code ErrorCode, message string) *NvyError {
	if err == nil {
		return nil
	}
	return &NvyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NvyError {
	if err == nil {
		return nil
	}
	return &NvyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NvyError) WithDetail(key string, value interface{}) *NvyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nvyErr *NvyError
	if errors.As(err, &nvyErr) {
		return nvyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NvyError
func GetErrorCode(err error) ErrorCode {
	var nvyErr *NvyError
	if errors.As(err, &nvyErr) {
		return nvyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NvyError
func GetErrorDetails(err error) map[string]interface{} {
	var nvyErr *NvyError
	if errors.As(err, &nvyErr) {
		return nvyErr.Details
	}
	return nil
}

// IsProfileError reports whether err came from resolving a profile in the
// project configuration.
func IsProfileError(err error) bool {
	switch GetErrorCode(err) {
	case ErrProfileNotFound, ErrProfileNoPath, ErrProfileMultiplePaths, ErrProfileEmptyPath:
		return true
	}
	return false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
