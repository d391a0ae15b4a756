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
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Environment bootstrap errors
	ErrEnvSource  ErrorCode = "ENV_SOURCE"
	ErrEnvCapture ErrorCode = "ENV_CAPTURE"
	ErrEnvApply   ErrorCode = "ENV_APPLY"

	// Launcher generation errors
	ErrTemplateRead  ErrorCode = "TEMPLATE_READ"
	ErrTemplateWrite ErrorCode = "TEMPLATE_WRITE"
	ErrTemplateToken ErrorCode = "TEMPLATE_TOKEN"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileRename   ErrorCode = "FILE_RENAME"
)

// PtbootError represents a structured error with code and details
type PtbootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PtbootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PtbootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PtbootError) Is(target error) bool {
	var targetErr *PtbootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PtbootError with the given code and message
func New(code ErrorCode, message string) *PtbootError {
	return &PtbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PtbootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PtbootError {
	return &PtbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PtbootError
func Wrap(err error, code ErrorCode, message string) *PtbootError {
	if err == nil {
		return nil
	}
	return &PtbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PtbootError {
	if err == nil {
		return nil
	}
	return &PtbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PtbootError) WithDetail(key string, value interface{}) *PtbootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ptErr *PtbootError
	if errors.As(err, &ptErr) {
		return ptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PtbootError
func GetErrorCode(err error) ErrorCode {
	var ptErr *PtbootError
	if errors.As(err, &ptErr) {
		return ptErr.Code
	}
	return ErrUnknown
}
