package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for processing and API errors
const (
	// General errors
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeRunInProgress  = "RUN_IN_PROGRESS"

	// Fatal I/O errors
	ErrCodeFileReadError  = "FILE_READ_ERROR"
	ErrCodeFileWriteError = "FILE_WRITE_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// IOError is an unanticipated failure reading an input file or writing an
// output file. It terminates the run.
type IOError struct {
	Code string
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("[%s] %s %s: %v", e.Code, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewReadError wraps a failure reading the input file at path
func NewReadError(op, path string, err error) *IOError {
	return &IOError{Code: ErrCodeFileReadError, Op: op, Path: path, Err: err}
}

// NewWriteError wraps a failure writing the output file at path
func NewWriteError(op, path string, err error) *IOError {
	return &IOError{Code: ErrCodeFileWriteError, Op: op, Path: path, Err: err}
}

// IsIOError reports whether err is, or wraps, an IOError
func IsIOError(err error) bool {
	var ioErr *IOError
	return stderrors.As(err, &ioErr)
}

// NewAppError creates a new application error
func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewAppErrorWithField creates a new application error with a field
func NewAppErrorWithField(code, message, field string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Field:      field,
		StatusCode: statusCode,
	}
}

// Error factory functions
func ErrInternalError(message string) *AppError {
	return NewAppError(ErrCodeInternalError, message, 500)
}

func ErrInvalidRequest(message string) *AppError {
	return NewAppError(ErrCodeInvalidRequest, message, 400)
}

func ErrRunInProgress() *AppError {
	return NewAppError(ErrCodeRunInProgress, "another run is in progress", 409)
}
