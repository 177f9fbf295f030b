package client

import (
	"context"
	"fmt"
	"net/http"

	"cidash/pkg/api"
)

// JobResponse is the response of the Job endpoint.
type JobResponse api.Job

// ListJobsResponse is the response of the ListJobs endpoint.
type ListJobsResponse []api.Job

const (
	// JobMethod is http method used for endpoint Job
	JobMethod     = http.MethodGet
	jobPathFormat = "/fastci/api/job/%d"

	// ListJobsMethod is http method used for endpoint ListJobs
	ListJobsMethod = http.MethodGet
	// ListJobsPath is the path of the endpoint ListJobs
	ListJobsPath = "/fastci/api/job_list"
)

func (cli *client) Job(ctx context.Context, id api.JobID) (JobResponse, error) {
	var res JobResponse
	if err := cli.do(ctx, JobMethod, fmt.Sprintf(jobPathFormat, id), nil, &res, fmt.Sprintf("job %d", id)); err != nil {
		return JobResponse{}, err
	}
	return res, nil
}

func (cli *client) ListJobs(ctx context.Context) (ListJobsResponse, error) {
	var res ListJobsResponse
	if err := cli.do(ctx, ListJobsMethod, ListJobsPath, nil, &res, "jobs"); err != nil {
		return nil, err
	}
	return res, nil
}
