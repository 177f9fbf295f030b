// Package graph turns a pipeline snapshot into a layered dependency graph.
//
// Everything in this package is a pure function of its input: nothing is
// cached between calls and a Graph is never modified after it is built, so
// concurrent callers need no coordination.
package graph

import (
	"cidash/pkg/api"
)

// Graph is an immutable dependency graph of the jobs of one pipeline snapshot.
// Adjacency is stored by position in the snapshot's job list.
type Graph struct {
	jobs     []api.Job
	index    map[api.JobID]int
	parents  [][]int
	children [][]int
}

// BuildChildGraph builds the graph for the given jobs, computing for every job
// the jobs that name it as parent.
// Children are listed in the order the child jobs appear in jobs.
func BuildChildGraph(jobs []api.Job) (*Graph, error) {
	g := &Graph{
		jobs:     make([]api.Job, len(jobs)),
		index:    make(map[api.JobID]int, len(jobs)),
		parents:  make([][]int, len(jobs)),
		children: make([][]int, len(jobs)),
	}

	for i, j := range jobs {
		if _, exists := g.index[j.ID]; exists {
			return nil, DuplicateJobError{Job: j.ID}
		}
		g.index[j.ID] = i
		j.Parents = append([]api.JobID(nil), j.Parents...)
		g.jobs[i] = j
	}

	for i, j := range g.jobs {
		seen := make(map[int]bool, len(j.Parents))
		for _, pid := range j.Parents {
			p, exists := g.index[pid]
			if !exists {
				return nil, UnknownParentError{Job: j.ID, Parent: pid}
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			g.parents[i] = append(g.parents[i], p)
			g.children[p] = append(g.children[p], i)
		}
	}
	return g, nil
}

// Len returns the number of jobs in the graph.
func (g *Graph) Len() int {
	return len(g.jobs)
}

// Jobs returns the jobs in snapshot order.
func (g *Graph) Jobs() []api.Job {
	out := make([]api.Job, len(g.jobs))
	copy(out, g.jobs)
	return out
}

// Job returns the job with the given ID.
func (g *Graph) Job(id api.JobID) (api.Job, bool) {
	i, ok := g.index[id]
	if !ok {
		return api.Job{}, false
	}
	return g.jobs[i], true
}

// Parents returns the distinct parents of the given job.
func (g *Graph) Parents(id api.JobID) []api.JobID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.ids(g.parents[i])
}

// Children returns the jobs depending on the given job.
func (g *Graph) Children(id api.JobID) []api.JobID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.ids(g.children[i])
}

func (g *Graph) ids(idx []int) []api.JobID {
	if len(idx) == 0 {
		return nil
	}
	out := make([]api.JobID, len(idx))
	for k, i := range idx {
		out[k] = g.jobs[i].ID
	}
	return out
}
