// Package view derives what a dashboard draws from a pipeline snapshot.
package view

import (
	"cidash/pkg/api"
	"cidash/pkg/graph"
	"cidash/pkg/status"

	"github.com/pkg/errors"
)

// PipelineView is the layered, classified view of a pipeline snapshot.
type PipelineView struct {
	ID         api.PipelineID     `json:"id"`
	Name       string             `json:"name"`
	Status     api.PipelineStatus `json:"status"`
	StatusText string             `json:"statusText"`
	Class      api.StatusClass    `json:"class"`
	Stages     []StageView        `json:"stages"`
	Edges      []Edge             `json:"edges"`
}

// StageView is a stage with its aggregated class.
type StageView struct {
	Index int             `json:"index"`
	Class api.StatusClass `json:"class"`
	Jobs  []JobView       `json:"jobs"`
}

// JobView is a job with its class and position.
type JobView struct {
	ID         api.JobID       `json:"id"`
	Name       string          `json:"name"`
	Status     api.JobStatus   `json:"status"`
	StatusText string          `json:"statusText"`
	Class      api.StatusClass `json:"class"`
	ExitCode   *int            `json:"exitCode,omitempty"`
	UptimeSecs float64         `json:"uptimeSecs"`
	StageIdx   int             `json:"stageIdx"`
	IdxInStage int             `json:"idxInStage"`
	Children   []api.JobID     `json:"children,omitempty"`
}

// Position is the place of a job in the layered graph.
type Position struct {
	Stage int `json:"stage"`
	Index int `json:"index"`
}

// Edge is a parent -> child dependency with both ends placed.
type Edge struct {
	From    api.JobID `json:"from"`
	To      api.JobID `json:"to"`
	FromPos Position  `json:"fromPos"`
	ToPos   Position  `json:"toPos"`
}

// Build computes the view of the given snapshot.
// It fails when the snapshot references unknown parents or has a dependency cycle.
func Build(p api.Pipeline) (PipelineView, error) {
	g, err := graph.BuildChildGraph(p.Jobs)
	if err != nil {
		return PipelineView{}, errors.Wrapf(err, "cannot build graph of pipeline %d", p.ID)
	}
	stages, err := graph.TopologicalLayers(g)
	if err != nil {
		return PipelineView{}, errors.Wrapf(err, "cannot layer pipeline %d", p.ID)
	}

	v := PipelineView{
		ID:         p.ID,
		Name:       p.Name,
		Status:     p.Status,
		StatusText: p.Status.String(),
		Class:      status.ClassForPipeline(p.Status),
		Stages:     make([]StageView, len(stages)),
	}
	positions := make(map[api.JobID]Position, g.Len())
	for i, s := range stages {
		sv := StageView{
			Index: i,
			Class: status.ClassifyLayer(s),
			Jobs:  make([]JobView, len(s)),
		}
		for k, j := range s {
			sv.Jobs[k] = JobView{
				ID:         j.ID,
				Name:       j.Name,
				Status:     j.Status,
				StatusText: j.Status.String(),
				Class:      status.ClassifyJob(j.Job),
				ExitCode:   j.ExitCode,
				UptimeSecs: j.UptimeSecs,
				StageIdx:   j.StageIdx,
				IdxInStage: j.IdxInStage,
				Children:   j.Children,
			}
			positions[j.ID] = Position{Stage: j.StageIdx, Index: j.IdxInStage}
		}
		v.Stages[i] = sv
	}

	for _, s := range stages {
		for _, j := range s {
			for _, c := range j.Children {
				v.Edges = append(v.Edges, Edge{
					From:    j.ID,
					To:      c,
					FromPos: positions[j.ID],
					ToPos:   positions[c],
				})
			}
		}
	}
	return v, nil
}

// Finished returns true if the pipeline of the view reached a final status.
func (v PipelineView) Finished() bool {
	return v.Status.Finished()
}

// JobCount returns the number of jobs in the view.
func (v PipelineView) JobCount() int {
	n := 0
	for _, s := range v.Stages {
		n += len(s.Jobs)
	}
	return n
}
