package graph

import (
	"fmt"
	"strings"

	"cidash/pkg/api"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownParent is the kind of UnknownParentError.
	ErrUnknownParent = errors.New("unknown parent reference")

	// ErrDuplicateJob is the kind of DuplicateJobError.
	ErrDuplicateJob = errors.New("duplicate job")

	// ErrCycleDetected is the kind of CycleError.
	ErrCycleDetected = errors.New("cycle detected")
)

// UnknownParentError is returned when a job names a parent absent from the snapshot.
type UnknownParentError struct {
	Job    api.JobID
	Parent api.JobID
}

func (err UnknownParentError) Error() string {
	return fmt.Sprintf("%s: job %d depends on job %d", ErrUnknownParent, err.Job, err.Parent)
}

func (err UnknownParentError) Unwrap() error { return ErrUnknownParent }

// DuplicateJobError is returned when the same job ID appears twice in a snapshot.
type DuplicateJobError struct {
	Job api.JobID
}

func (err DuplicateJobError) Error() string {
	return fmt.Sprintf("%s: %d", ErrDuplicateJob, err.Job)
}

func (err DuplicateJobError) Unwrap() error { return ErrDuplicateJob }

// CycleError is returned when the dependency edges are not acyclic.
// Path starts and ends with the same job.
type CycleError struct {
	Path []api.JobID
}

func (err CycleError) Error() string {
	parts := make([]string, len(err.Path))
	for i, id := range err.Path {
		parts[i] = fmt.Sprint(int64(id))
	}
	return fmt.Sprintf("%s: %s", ErrCycleDetected, strings.Join(parts, " -> "))
}

func (err CycleError) Unwrap() error { return ErrCycleDetected }
