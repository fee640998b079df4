package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client error carrying the HTTP status of the
// backend response that produced it (when one exists).
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Error codes for the transport taxonomy.
const (
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeRequestFailed  = "REQUEST_FAILED"
	CodeDownloadFailed = "DOWNLOAD_FAILED"
	CodeNetworkFailure = "NETWORK_FAILURE"
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// Predefined errors for common scenarios.
var (
	ErrAuthRequired = New(CodeAuthRequired, http.StatusUnauthorized, "authentication required")
	ErrValidation   = New(CodeValidation, http.StatusBadRequest, "validation failed")
	ErrNotFound     = New(CodeNotFound, http.StatusNotFound, "not found")
	ErrInternal     = New(CodeInternal, http.StatusInternalServerError, "internal error")
)

// AuthRequired reports an action that needed a token without one present.
// It is surfaced before any network round-trip happens.
func AuthRequired() *Error {
	return ErrAuthRequired
}

// RequestFailed builds the error for a non-2xx JSON response. The message is
// the backend's error field, or a synthesized status line when the body could
// not be parsed.
func RequestFailed(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return New(CodeRequestFailed, status, message)
}

// DownloadFailed builds the error for a non-2xx binary response.
func DownloadFailed(status int) *Error {
	return New(CodeDownloadFailed, status, fmt.Sprintf("download failed with status %d", status))
}

// NetworkFailure wraps a transport-level failure (DNS, timeout, refused
// connection). Callers treat it like RequestFailed and display the message.
func NetworkFailure(err error) *Error {
	return Wrap(err, CodeNetworkFailure, http.StatusServiceUnavailable, "network failure")
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	e := FromError(err)
	return e != nil && e.Code == code
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
