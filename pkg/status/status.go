// Package status maps raw job and pipeline statuses to display classes.
package status

import (
	"cidash/pkg/api"
	"cidash/pkg/graph"
)

// ClassifyJob returns the class of a job from its raw status and exit code.
// A finished job without exit code is considered failed.
func ClassifyJob(job api.Job) api.StatusClass {
	switch job.Status {
	case api.JobNotStarted:
		return api.ClassNotStarted
	case api.JobRunning:
		return api.ClassRunning
	case api.JobTimedOut, api.JobDockerError, api.JobNotFound, api.JobFailedToStart:
		return api.ClassFailed
	case api.JobFinished:
		if job.Succeeded() {
			return api.ClassSucceeded
		}
		return api.ClassFailed
	default:
		return api.ClassCancelled
	}
}

// ClassifyStage aggregates the classes of the given jobs.
// Precedence is running, not started, cancelled, failed; a stage is
// succeeded only when every job is.
func ClassifyStage(jobs []api.Job) api.StatusClass {
	var anyNotStarted, anyCancelled, anyFailed bool
	for _, j := range jobs {
		switch ClassifyJob(j) {
		case api.ClassRunning:
			return api.ClassRunning
		case api.ClassNotStarted:
			anyNotStarted = true
		case api.ClassCancelled:
			anyCancelled = true
		case api.ClassFailed:
			anyFailed = true
		}
	}

	switch {
	case anyNotStarted:
		return api.ClassNotStarted
	case anyCancelled:
		return api.ClassCancelled
	case anyFailed:
		return api.ClassFailed
	default:
		return api.ClassSucceeded
	}
}

// ClassifyLayer is ClassifyStage for a stage of the layered graph.
func ClassifyLayer(stage graph.Stage) api.StatusClass {
	return ClassifyStage(stage.Jobs())
}

// ClassForPipeline maps the raw pipeline status to its class.
func ClassForPipeline(s api.PipelineStatus) api.StatusClass {
	switch s {
	case api.PipelineNotStarted:
		return api.ClassNotStarted
	case api.PipelineRunning:
		return api.ClassRunning
	case api.PipelineFailed:
		return api.ClassFailed
	case api.PipelineFinished:
		return api.ClassSucceeded
	default:
		return api.ClassCancelled
	}
}
