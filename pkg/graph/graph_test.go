package graph

import (
	"testing"

	"cidash/pkg/api"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(id api.JobID, parents ...api.JobID) api.Job {
	return api.Job{ID: id, Name: string(rune('A' + id - 1)), Parents: parents}
}

func TestBuildChildGraph(t *testing.T) {
	t.Run("children", func(t *testing.T) {
		g, err := BuildChildGraph([]api.Job{job(1), job(2, 1), job(3, 1), job(4, 2, 3)})
		require.NoError(t, err)
		assert.Equal(t, 4, g.Len())
		assert.Equal(t, []api.JobID{2, 3}, g.Children(1))
		assert.Equal(t, []api.JobID{4}, g.Children(2))
		assert.Equal(t, []api.JobID{4}, g.Children(3))
		assert.Nil(t, g.Children(4))
		assert.Equal(t, []api.JobID{2, 3}, g.Parents(4))
		assert.Nil(t, g.Parents(1))
	})

	t.Run("symmetry", func(t *testing.T) {
		g, err := BuildChildGraph([]api.Job{job(5, 3), job(3), job(4, 3, 5), job(1, 4)})
		require.NoError(t, err)
		for _, j := range g.Jobs() {
			for _, c := range g.Children(j.ID) {
				assert.Contains(t, g.Parents(c), j.ID)
			}
			for _, p := range g.Parents(j.ID) {
				assert.Contains(t, g.Children(p), j.ID)
			}
		}
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, err := BuildChildGraph([]api.Job{job(1), job(2, 99)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownParent))
		var upErr UnknownParentError
		require.True(t, errors.As(err, &upErr))
		assert.Equal(t, api.JobID(2), upErr.Job)
		assert.Equal(t, api.JobID(99), upErr.Parent)
	})

	t.Run("duplicate job", func(t *testing.T) {
		_, err := BuildChildGraph([]api.Job{job(1), job(1)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateJob))
	})

	t.Run("duplicate parent", func(t *testing.T) {
		g, err := BuildChildGraph([]api.Job{job(1), job(2, 1, 1)})
		require.NoError(t, err)
		assert.Equal(t, []api.JobID{1}, g.Parents(2))
		assert.Equal(t, []api.JobID{2}, g.Children(1))
	})

	t.Run("input not aliased", func(t *testing.T) {
		jobs := []api.Job{job(1), job(2, 1)}
		g, err := BuildChildGraph(jobs)
		require.NoError(t, err)
		jobs[1].Parents[0] = 42
		jobs[0].Name = "changed"
		j, ok := g.Job(2)
		require.True(t, ok)
		assert.Equal(t, []api.JobID{1}, j.Parents)
		j, _ = g.Job(1)
		assert.Equal(t, "A", j.Name)
	})

	t.Run("missing job", func(t *testing.T) {
		g, err := BuildChildGraph(nil)
		require.NoError(t, err)
		_, ok := g.Job(1)
		assert.False(t, ok)
		assert.Nil(t, g.Parents(1))
		assert.Nil(t, g.Children(1))
		assert.Equal(t, 0, g.Len())
	})
}
