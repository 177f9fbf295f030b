package client

import (
	"context"
	"fmt"
	"net/http"

	"cidash/pkg/api"
)

const (
	// ActionMethod is http method used for the cancel and update endpoints
	ActionMethod = http.MethodGet

	cancelPipelinePathFormat = "/fastci/api/cancel_pipeline/%d"
	updatePipelinePathFormat = "/fastci/api/update_pipeline/%d"
	cancelJobPathFormat      = "/fastci/api/cancel_job/%d"
	updateJobPathFormat      = "/fastci/api/update_job/%d"
)

func (cli *client) CancelPipeline(ctx context.Context, id api.PipelineID) error {
	return cli.do(ctx, ActionMethod, fmt.Sprintf(cancelPipelinePathFormat, id), nil, nil, fmt.Sprintf("pipeline %d", id))
}

func (cli *client) UpdatePipeline(ctx context.Context, id api.PipelineID) error {
	return cli.do(ctx, ActionMethod, fmt.Sprintf(updatePipelinePathFormat, id), nil, nil, fmt.Sprintf("pipeline %d", id))
}

func (cli *client) CancelJob(ctx context.Context, id api.JobID) error {
	return cli.do(ctx, ActionMethod, fmt.Sprintf(cancelJobPathFormat, id), nil, nil, fmt.Sprintf("job %d", id))
}

func (cli *client) UpdateJob(ctx context.Context, id api.JobID) error {
	return cli.do(ctx, ActionMethod, fmt.Sprintf(updateJobPathFormat, id), nil, nil, fmt.Sprintf("job %d", id))
}
