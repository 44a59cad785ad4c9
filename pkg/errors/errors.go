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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrBadOutputPath ErrorCode = "BAD_OUTPUT_PATH"
	ErrStyleInvalid  ErrorCode = "STYLE_INVALID"
	ErrThemeLoad     ErrorCode = "THEME_LOAD"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// Detail keys attached to output errors
const (
	DetailPath    = "path"
	DetailPrinter = "printer"
)

// PrinterError represents a structured error with code and details
type PrinterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PrinterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PrinterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PrinterError) Is(target error) bool {
	var targetErr *PrinterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PrinterError with the given code and message
func New(code ErrorCode, message string) *PrinterError {
	return &PrinterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PrinterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PrinterError {
	return &PrinterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PrinterError
func Wrap(err error, code ErrorCode, message string) *PrinterError {
	if err == nil {
		return nil
	}
	return &PrinterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PrinterError {
	if err == nil {
		return nil
	}
	return &PrinterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// BadOutputPath reports an output path that names a directory. printer is
// the type name of the printer that tried to open it.
func BadOutputPath(path, printer string) *PrinterError {
	return Newf(ErrBadOutputPath, "%s: output path %q is a directory", printer, path).
		WithDetail(DetailPath, path).
		WithDetail(DetailPrinter, printer)
}

// WithDetail adds a detail to the error
func (e *PrinterError) WithDetail(key string, value interface{}) *PrinterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PrinterError) WithDetails(details map[string]interface{}) *PrinterError {
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
	var printerErr *PrinterError
	if errors.As(err, &printerErr) {
		return printerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PrinterError
func GetErrorCode(err error) ErrorCode {
	var printerErr *PrinterError
	if errors.As(err, &printerErr) {
		return printerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PrinterError
func GetErrorDetails(err error) map[string]interface{} {
	var printerErr *PrinterError
	if errors.As(err, &printerErr) {
		return printerErr.Details
	}
	return nil
}
