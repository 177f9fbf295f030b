package api

// StatusClass is the display category of a job, a stage or a pipeline.
type StatusClass string

const (
	// ClassNotStarted nothing started yet
	ClassNotStarted StatusClass = "not_started"

	// ClassRunning work in progress
	ClassRunning StatusClass = "running"

	// ClassFailed execution fault
	ClassFailed StatusClass = "failed"

	// ClassSucceeded everything done without error
	ClassSucceeded StatusClass = "succeeded"

	// ClassCancelled stopped by an operator or skipped after a failed dependency
	ClassCancelled StatusClass = "cancelled"
)
