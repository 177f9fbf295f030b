package client

import (
	"context"
	"fmt"
	"net/http"

	"cidash/pkg/api"
)

// PipelineResponse is the response of the Pipeline endpoint.
type PipelineResponse api.Pipeline

// ListPipelinesResponse is the response of the ListPipelines endpoint.
type ListPipelinesResponse []api.Pipeline

const (
	// PipelineMethod is http method used for endpoint Pipeline
	PipelineMethod     = http.MethodGet
	pipelinePathFormat = "/fastci/api/pipeline/%d"

	// ListPipelinesMethod is http method used for endpoint ListPipelines
	ListPipelinesMethod = http.MethodGet
	// ListPipelinesPath is the path of the endpoint ListPipelines
	ListPipelinesPath = "/fastci/api/pipeline_list"
)

func (cli *client) Pipeline(ctx context.Context, id api.PipelineID) (PipelineResponse, error) {
	var res PipelineResponse
	if err := cli.do(ctx, PipelineMethod, fmt.Sprintf(pipelinePathFormat, id), nil, &res, fmt.Sprintf("pipeline %d", id)); err != nil {
		return PipelineResponse{}, err
	}
	return res, nil
}

func (cli *client) ListPipelines(ctx context.Context) (ListPipelinesResponse, error) {
	var res ListPipelinesResponse
	if err := cli.do(ctx, ListPipelinesMethod, ListPipelinesPath, nil, &res, "pipelines"); err != nil {
		return nil, err
	}
	return res, nil
}
