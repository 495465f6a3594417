package domain

import (
	"errors"
	"net/http"
)

// ClientError is a caller-attributable failure carrying the HTTP status the
// boundary handler should render. Any error that is not a ClientError is
// treated as an opaque fault and rendered as 500.
type ClientError struct {
	Message    string
	StatusCode int
}

// NewClientError builds a ClientError with an explicit status code.
func NewClientError(message string, statusCode int) *ClientError {
	return &ClientError{Message: message, StatusCode: statusCode}
}

func (e *ClientError) Error() string {
	return e.Message
}

// Sentinel client errors raised by the auth and catalog services. Services
// return these directly so callers can discriminate with errors.Is.
var (
	ErrUserNotFound         = NewClientError("user not found", http.StatusBadRequest)
	ErrWrongPassword        = NewClientError("wrong password", http.StatusBadRequest)
	ErrUserExists           = NewClientError("username already taken", http.StatusConflict)
	ErrCarNotFound          = NewClientError("car not found", http.StatusNotFound)
	ErrInvalidPayload       = NewClientError("invalid request payload", http.StatusBadRequest)
	ErrMissingAuthorization = NewClientError("missing or malformed authorization header", http.StatusUnauthorized)
	ErrForbidden            = NewClientError("forbidden", http.StatusForbidden)
)

// ErrInvalidToken is deliberately NOT a ClientError: token validation failures
// propagate as opaque faults and render as 500.
var ErrInvalidToken = errors.New("invalid token")
