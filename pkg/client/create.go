package client

import (
	"context"
	"net/http"
	"strings"

	"cidash/pkg/api"
	"cidash/pkg/graph"

	"github.com/pkg/errors"
)

const (
	// CreatePipelineMethod is http method used for endpoint CreatePipeline
	CreatePipelineMethod = http.MethodPost
	// CreatePipelinePath is the path of the endpoint CreatePipeline. The trailing slash is required by the backend.
	CreatePipelinePath = "/fastci/api/create_pipeline/"
)

// JobDefinition is a job of a pipeline definition.
type JobDefinition struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Command     string   `json:"command"`
	Volumes     []string `json:"volumes"`
	TimeoutSecs *float64 `json:"timeout_secs,omitempty"`
}

// CreatePipelineRequest is the request structure for the CreatePipeline endpoint.
// Parents maps a job name to the names of the jobs it depends on.
type CreatePipelineRequest struct {
	Name    string              `json:"name"`
	Jobs    []JobDefinition     `json:"jobs"`
	Parents map[string][]string `json:"parents,omitempty"`
}

// CreatePipelineResponse is the response structure for the CreatePipeline endpoint.
// ID is zero when the backend does not return it.
type CreatePipelineResponse struct {
	ID api.PipelineID `json:"id"`
}

// Validate checks the definition can be layered: job names are unique,
// parents name known jobs and dependencies have no cycle.
func (req CreatePipelineRequest) Validate() error {
	if req.Name == "" {
		return errors.New("pipeline name is required")
	}
	if len(req.Jobs) == 0 {
		return errors.New("pipeline has no job")
	}

	ids := make(map[string]api.JobID, len(req.Jobs))
	jobs := make([]api.Job, len(req.Jobs))
	for i, jd := range req.Jobs {
		if jd.Name == "" {
			return errors.Errorf("job %d has no name", i)
		}
		// Duplicate names are reported by the graph.
		if _, exists := ids[jd.Name]; !exists {
			ids[jd.Name] = api.JobID(i + 1)
		}
		jobs[i] = api.Job{ID: ids[jd.Name], Name: jd.Name}
	}
	for child, parents := range req.Parents {
		id, ok := ids[child]
		if !ok {
			return errors.Errorf("parents given for unknown job %s", child)
		}
		for _, p := range parents {
			pid, ok := ids[p]
			if !ok {
				return errors.Errorf("job %s depends on unknown job %s", child, p)
			}
			jobs[id-1].Parents = append(jobs[id-1].Parents, pid)
		}
	}

	g, err := graph.BuildChildGraph(jobs)
	if err != nil {
		var dErr graph.DuplicateJobError
		if errors.As(err, &dErr) {
			return errors.Wrapf(err, "job name %s is used twice", req.Jobs[dErr.Job-1].Name)
		}
		return errors.Wrap(err, "invalid dependencies")
	}
	if _, err := g.TopologicalOrder(); err != nil {
		var cErr graph.CycleError
		if errors.As(err, &cErr) {
			names := make([]string, len(cErr.Path))
			for i, id := range cErr.Path {
				names[i] = req.Jobs[id-1].Name
			}
			return errors.Wrapf(err, "jobs %s depend on each other", strings.Join(names, " -> "))
		}
		return errors.Wrap(err, "invalid dependencies")
	}
	return nil
}

func (cli *client) CreatePipeline(ctx context.Context, req CreatePipelineRequest) (CreatePipelineResponse, error) {
	if err := req.Validate(); err != nil {
		return CreatePipelineResponse{}, ErrBadRequest{errors.Wrap(err, "pipeline is not valid")}
	}
	var res CreatePipelineResponse
	if err := cli.do(ctx, CreatePipelineMethod, CreatePipelinePath, req, &res, "pipeline creation"); err != nil {
		return CreatePipelineResponse{}, err
	}
	return res, nil
}
