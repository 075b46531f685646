package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be reported to an API caller.
// Message is the stable, caller-facing text; internal causes never reach it.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError returns an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

// NewBadRequest is a 400 with the given message.
func NewBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewNotFound is a 404 with the given message.
func NewNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// ErrInternalServerError is reported when nothing more specific is known.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")

// AsHTTPError unwraps err looking for an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
