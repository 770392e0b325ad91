package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches a RemoteError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches a RemoteError with status 404.
	ErrNotFound = errors.New("not found")
)

// RemoteError is a non-2xx response from the notes API.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if msg := messageFromBody([]byte(e.Body)); msg != "" {
		return fmt.Sprintf("remote error %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("remote error %d: %s", e.Status, http.StatusText(e.Status))
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// AuthError is a rejected login or registration. Message is meant for the user.
type AuthError struct {
	Status  int // zero when the request never got a response
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is, or wraps, a 401 RemoteError.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
