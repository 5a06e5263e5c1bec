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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Registry errors
	ErrRegistryLoad  ErrorCode = "REGISTRY_LOAD"
	ErrRegistryParse ErrorCode = "REGISTRY_PARSE"
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateExists   ErrorCode = "TEMPLATE_EXISTS"

	// FileSystem errors
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrFileWrite         ErrorCode = "FILE_WRITE"
	ErrDirCreate         ErrorCode = "DIR_CREATE"
	ErrCopy              ErrorCode = "COPY"
	ErrDestinationIsFile ErrorCode = "DESTINATION_IS_FILE"

	// Script errors
	ErrScriptExecute ErrorCode = "SCRIPT_EXECUTE"

	// Interaction errors
	ErrPrompt         ErrorCode = "PROMPT"
	ErrNotInteractive ErrorCode = "NOT_INTERACTIVE"
)

// EdnaError represents a structured error with code and details
type EdnaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EdnaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EdnaError) Unwrap() error {
	return e.Wrapped
}

// Is matches any EdnaError carrying the same code
func (e *EdnaError) Is(target error) bool {
	var targetErr *EdnaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EdnaError with the given code and message
func New(code ErrorCode, message string) *EdnaError {
	return &EdnaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EdnaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EdnaError {
	return &EdnaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EdnaError
func Wrap(err error, code ErrorCode, message string) *EdnaError {
	if err == nil {
		return nil
	}
	return &EdnaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EdnaError {
	if err == nil {
		return nil
	}
	return &EdnaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EdnaError) WithDetail(key string, value interface{}) *EdnaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ednaErr *EdnaError
	if errors.As(err, &ednaErr) {
		return ednaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EdnaError
func GetErrorCode(err error) ErrorCode {
	var ednaErr *EdnaError
	if errors.As(err, &ednaErr) {
		return ednaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EdnaError
func GetErrorDetails(err error) map[string]interface{} {
	var ednaErr *EdnaError
	if errors.As(err, &ednaErr) {
		return ednaErr.Details
	}
	return nil
}

// ExitCode maps an error returned by a command to the process exit status.
// Every engine failure is fatal for the invocation; non-fatal conditions such
// as failing init scripts never surface as errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
