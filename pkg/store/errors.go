package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError returns a new ErrNotFound
func NotFoundError(what string) error {
	return ErrNotFound{what}
}

// ErrNotFound is the error returned when no view is stored for a pipeline.
type ErrNotFound struct {
	what string
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", err.what)
}

// IsNotFound returns true if err or one of the errors it wraps is an ErrNotFound.
func IsNotFound(err error) bool {
	return errors.As(err, &ErrNotFound{})
}
