package api

// PipelineID identifies a pipeline.
type PipelineID int64

// Pipeline is a point-in-time snapshot of a pipeline and its jobs.
// Jobs are kept in the order the backend returned them.
type Pipeline struct {
	ID     PipelineID     `json:"id"`
	Name   string         `json:"name"`
	Status PipelineStatus `json:"status"`
	Jobs   []Job          `json:"jobs"`
}

// PipelineStatus is the raw pipeline status owned by the execution backend.
type PipelineStatus int

const (
	// PipelineNotStarted no job started yet
	PipelineNotStarted PipelineStatus = iota
	// PipelineRunning there are still jobs to be run
	PipelineRunning
	// PipelineFailed every job that could run has run and at least one failed
	PipelineFailed
	// PipelineFinished every job finished successfully
	PipelineFinished
	// PipelineCancelled the whole pipeline was cancelled
	PipelineCancelled
)

var pipelineStatusDescriptions = [...]string{
	"Not started",
	"Running",
	"Failed",
	"Finished",
	"Cancelled",
}

func (s PipelineStatus) String() string {
	if s < 0 || int(s) >= len(pipelineStatusDescriptions) {
		return "Unknown"
	}
	return pipelineStatusDescriptions[s]
}

// Finished returns true if the status is considered final
func (s PipelineStatus) Finished() bool {
	for _, fs := range []PipelineStatus{PipelineFailed, PipelineFinished, PipelineCancelled} {
		if s == fs {
			return true
		}
	}
	return false
}
