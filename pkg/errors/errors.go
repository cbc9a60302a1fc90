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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template errors
	ErrTemplateNotFound    ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateUnsupported ErrorCode = "TEMPLATE_UNSUPPORTED"
	ErrSigningUnsupported  ErrorCode = "SIGNING_UNSUPPORTED"

	// FileSystem errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// Collaborator errors
	ErrAccountCreate ErrorCode = "ACCOUNT_CREATE"
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"
)

// MovekitError represents a structured error with code and details
type MovekitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MovekitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MovekitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MovekitError) Is(target error) bool {
	var targetErr *MovekitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MovekitError with the given code and message
func New(code ErrorCode, message string) *MovekitError {
	return &MovekitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MovekitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MovekitError {
	return &MovekitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MovekitError
func Wrap(err error, code ErrorCode, message string) *MovekitError {
	if err == nil {
		return nil
	}
	return &MovekitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MovekitError {
	if err == nil {
		return nil
	}
	return &MovekitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MovekitError) WithDetail(key string, value interface{}) *MovekitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mkErr *MovekitError
	if errors.As(err, &mkErr) {
		return mkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MovekitError
func GetErrorCode(err error) ErrorCode {
	var mkErr *MovekitError
	if errors.As(err, &mkErr) {
		return mkErr.Code
	}
	return ErrUnknown
}
