package common

import (
	"context"
	"strconv"

	"cidash/pkg/api"
	"cidash/pkg/client"
	"cidash/pkg/view"

	"github.com/pkg/errors"
)

// ParsePipelineID parses a pipeline ID given on the command line.
func ParsePipelineID(s string) (api.PipelineID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid pipeline id %q", s)
	}
	return api.PipelineID(id), nil
}

// ParseJobID parses a job ID given on the command line.
func ParseJobID(s string) (api.JobID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid job id %q", s)
	}
	return api.JobID(id), nil
}

// FetchView returns the layered view of the pipeline.
func FetchView(ctx context.Context, cli client.Client, pid api.PipelineID) (view.PipelineView, error) {
	p, err := cli.Pipeline(ctx, pid)
	if err != nil {
		return view.PipelineView{}, errors.Wrapf(err, "cannot get pipeline %d", pid)
	}
	return view.Build(api.Pipeline(p))
}
