package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrCorruptStore
	ErrWriteFailed
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is or wraps an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Error constructors

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

// CorruptStore marks a persisted document that exists but cannot be read or
// parsed. Callers must treat it as a decision point, not a silent fallback:
// continuing means discarding whatever the document held.
func CorruptStore(path string, err error) *AppError {
	return &AppError{
		Code:    ErrCorruptStore,
		Message: fmt.Sprintf("data file %s is unreadable", path),
		Err:     err,
	}
}

// WriteFailed marks a failed save. The in-memory mutation has already
// happened, so the operator must be told the change may not have been kept.
func WriteFailed(err error) *AppError {
	return &AppError{
		Code:    ErrWriteFailed,
		Message: "failed to write data file",
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}
