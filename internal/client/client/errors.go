package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: no response from the
	// server at all (network, DNS, refused connection).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks a server-confirmed credential rejection (401).
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is a response received with a non-success status, optionally
// carrying the server's human-readable message.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match any 401 rejection.
func (e *ServerError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
