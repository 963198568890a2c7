package client

import (
	"errors"
	"fmt"
)

// ErrNotFound classifies every failed single-record fetch: the views do not
// distinguish a 404 from any other non-2xx on a get-by-id.
var ErrNotFound = errors.New("record not found")

// NetworkError wraps a transport failure (no HTTP response at all).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Message carries the optional
// human-readable "message" field from the body, empty when the server sent
// none.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// MessageFrom extracts the server-provided message from an error chain, or
// "" when the error carries none. Callers fall back to their own wording.
func MessageFrom(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
