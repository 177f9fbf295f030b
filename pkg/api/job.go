package api

import (
	"bytes"
	"encoding/json"
)

// JobID identifies a job. It is unique within a pipeline.
type JobID int64

// Job is a point-in-time record of a single job as returned by the CI backend.
type Job struct {
	ID       JobID       `json:"id"`
	Name     string      `json:"name"`
	Pipeline PipelineRef `json:"pipeline"`
	// Parents are the jobs this job depends on.
	Parents  []JobID   `json:"parents"`
	Status   JobStatus `json:"status"`
	ExitCode *int      `json:"exit_code"`

	ContainerID       string   `json:"container_id,omitempty"`
	TimeoutSecs       *float64 `json:"timeout_secs,omitempty"`
	HostStartTimeSecs float64  `json:"host_start_time_secs,omitempty"`
	UptimeSecs        float64  `json:"uptime_secs,omitempty"`
	Error             string   `json:"error,omitempty"`
	Output            string   `json:"output,omitempty"`
}

// JobStatus is the raw job status reported by the execution backend.
type JobStatus int

const (
	// JobNotStarted job is created but not yet started
	JobNotStarted JobStatus = iota
	// JobRunning job container is running
	JobRunning
	// JobTimedOut job exceeded its timeout
	JobTimedOut
	// JobDockerError the container could not be run
	JobDockerError
	// JobNotFound the container does not exist anymore
	JobNotFound
	// JobFinished job exited, success depends on the exit code
	JobFinished
	// JobFailedToStart the container refused to start
	JobFailedToStart
	// JobCancelled job was cancelled by an operator
	JobCancelled
	// JobDependencyFailed job was not run because one of its parents failed
	JobDependencyFailed
)

var jobStatusDescriptions = [...]string{
	"Not started",
	"Running",
	"Timed out",
	"Docker error",
	"Not found",
	"Finished",
	"Failed to start",
	"Cancelled",
	"Dependency failed",
}

func (s JobStatus) String() string {
	if s < 0 || int(s) >= len(jobStatusDescriptions) {
		return "Unknown"
	}
	return jobStatusDescriptions[s]
}

// Complete returns true if the job was started and stopped running for any reason.
func (s JobStatus) Complete() bool {
	return s != JobNotStarted && s != JobRunning
}

// Succeeded returns true if the job finished with exit code 0.
func (j Job) Succeeded() bool {
	return j.Status == JobFinished && j.ExitCode != nil && *j.ExitCode == 0
}

// PipelineRef is the pipeline a job belongs to.
// The backend sends it as an object on job endpoints and as a bare ID elsewhere.
type PipelineRef struct {
	ID   PipelineID `json:"id"`
	Name string     `json:"name,omitempty"`
}

// UnmarshalJSON accepts both {"id":1,"name":"build"} and 1.
func (r *PipelineRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		type ref PipelineRef
		return json.Unmarshal(b, (*ref)(r))
	}
	if bytes.Equal(b, []byte("null")) {
		*r = PipelineRef{}
		return nil
	}
	var id PipelineID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*r = PipelineRef{ID: id}
	return nil
}
