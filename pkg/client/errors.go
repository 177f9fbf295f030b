package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnauthorized is returned when the backend rejects the credentials, even after a token refresh.
var ErrUnauthorized = errors.New("unauthorized")

// HTTPError is an HTTP Error
type HTTPError struct {
	StatusCode int         `json:"-"`
	Detail     interface{} `json:"detail"`
}

func (err HTTPError) Error() string {
	return fmt.Sprintf("http %d: %v", err.StatusCode, err.Detail)
}

// ErrNotFound is the error returned when something requested could not be found.
type ErrNotFound struct {
	what string
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", err.what)
}

// ErrBadRequest is returned when the backend rejects a request as invalid.
type ErrBadRequest struct {
	err error
}

func (err ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", err.err)
}

// Cause returns the error sent by the backend.
func (err ErrBadRequest) Cause() error {
	return err.err
}

func (err ErrBadRequest) Unwrap() error {
	return err.err
}
