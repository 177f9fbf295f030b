package graph

import (
	"cidash/pkg/api"
)

// LayeredJob is a job placed in the layered graph.
type LayeredJob struct {
	api.Job
	Children   []api.JobID `json:"children"`
	StageIdx   int         `json:"stage_idx"`
	IdxInStage int         `json:"idx_in_stage"`
}

// Stage is a group of jobs none of which depends on another.
type Stage []LayeredJob

// Jobs returns the raw jobs of the stage.
func (s Stage) Jobs() []api.Job {
	jobs := make([]api.Job, len(s))
	for i := range s {
		jobs[i] = s[i].Job
	}
	return jobs
}

// TopologicalLayers sorts the graph and groups its jobs into stages.
//
// A job without parents is in stage 0, any other job is one stage after its
// deepest parent. Within a stage, jobs keep the order of the topological sort.
// An empty graph has no stages. Nothing is returned if the graph has a cycle.
func TopologicalLayers(g *Graph) ([]Stage, error) {
	order, err := g.order()
	if err != nil {
		return nil, err
	}

	depth := make([]int, len(g.jobs))
	var stages []Stage
	for _, n := range order {
		for _, p := range g.parents[n] {
			if depth[p]+1 > depth[n] {
				depth[n] = depth[p] + 1
			}
		}
		d := depth[n]
		// Parents are placed first, so d never skips a stage.
		if d == len(stages) {
			stages = append(stages, nil)
		}

		job := g.jobs[n]
		job.Parents = g.ids(g.parents[n])
		stages[d] = append(stages[d], LayeredJob{
			Job:        job,
			Children:   g.ids(g.children[n]),
			StageIdx:   d,
			IdxInStage: len(stages[d]),
		})
	}
	return stages, nil
}
