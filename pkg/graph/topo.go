package graph

import (
	"cidash/pkg/api"
)

type visitState uint8

const (
	untouched visitState = iota
	inProgress
	done
)

// TopologicalOrder returns the job IDs ordered so that every job comes after all of its parents.
func (g *Graph) TopologicalOrder() ([]api.JobID, error) {
	order, err := g.order()
	if err != nil {
		return nil, err
	}
	return g.ids(order), nil
}

// order runs a depth-first traversal and returns node positions in topological order.
//
// Roots and children are visited in reverse snapshot order: once the
// post-order is reversed, jobs that do not depend on each other keep the
// order they had in the snapshot.
func (g *Graph) order() ([]int, error) {
	state := make([]visitState, len(g.jobs))
	result := make([]int, 0, len(g.jobs))
	var path []int // nodes currently in progress, outermost first

	var visit func(n int) error
	visit = func(n int) error {
		state[n] = inProgress
		path = append(path, n)

		children := g.children[n]
		for k := len(children) - 1; k >= 0; k-- {
			c := children[k]
			switch state[c] {
			case inProgress:
				return g.cycleError(path, c)
			case untouched:
				if err := visit(c); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		state[n] = done
		result = append(result, n)
		return nil
	}

	for n := len(g.jobs) - 1; n >= 0; n-- {
		if state[n] != untouched {
			continue
		}
		if err := visit(n); err != nil {
			return nil, err
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// cycleError builds the cycle closed by the back edge from the last node of path to target.
func (g *Graph) cycleError(path []int, target int) error {
	start := 0
	for i, n := range path {
		if n == target {
			start = i
			break
		}
	}
	cycle := append(g.ids(path[start:]), g.jobs[target].ID)
	return CycleError{Path: cycle}
}
