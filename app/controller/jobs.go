package main

import (
	"net/http"

	"cidash/pkg/api"
	"cidash/pkg/status"
	"cidash/pkg/util/context"

	"github.com/labstack/echo/v4"
)

// JobSummary is a job as shown in the job list.
type JobSummary struct {
	ID          api.JobID       `json:"id"`
	Name        string          `json:"name"`
	Pipeline    api.PipelineRef `json:"pipeline"`
	Status      api.JobStatus   `json:"status"`
	StatusText  string          `json:"statusText"`
	Class       api.StatusClass `json:"class"`
	ContainerID string          `json:"containerId,omitempty"`
}

// ListJobsResponse is the response struct for the list jobs endpoint
type ListJobsResponse struct {
	Jobs []JobSummary `json:"jobs"`
}

func (h handlers) ListJobs(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())
	jobs, err := h.cli.ListJobs(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	res := ListJobsResponse{Jobs: make([]JobSummary, len(jobs))}
	for i, j := range jobs {
		res.Jobs[i] = JobSummary{
			ID:          j.ID,
			Name:        j.Name,
			Pipeline:    j.Pipeline,
			Status:      j.Status,
			StatusText:  j.Status.String(),
			Class:       status.ClassifyJob(j),
			ContainerID: j.ContainerID,
		}
	}
	return c.JSON(http.StatusOK, res)
}
