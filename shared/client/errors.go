package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failure the backend reported itself: a non-success HTTP
// status with a JSON body. Message is the backend's message verbatim, shown
// to the user unmodified.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ProtocolError is a response the client could not interpret: a non-JSON body
// or JSON that does not match the expected shape.
type ProtocolError struct {
	Status  int
	Excerpt string
}

func (e *ProtocolError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("unexpected response from backend (status %d)", e.Status)
	}
	return fmt.Sprintf("unexpected response from backend (status %d): %s", e.Status, e.Excerpt)
}

// NetworkError is a transport-level failure before any HTTP response arrived.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot connect to backend at %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a backend 401, meaning the session
// cookies are missing, expired or revoked.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
