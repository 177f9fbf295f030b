package status

import (
	"testing"

	"cidash/pkg/api"
	"cidash/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exit(code int) *int {
	return &code
}

func TestClassifyJob(t *testing.T) {
	cases := []struct {
		name string
		job  api.Job
		want api.StatusClass
	}{
		{"not started", api.Job{Status: api.JobNotStarted}, api.ClassNotStarted},
		{"running", api.Job{Status: api.JobRunning}, api.ClassRunning},
		{"timed out", api.Job{Status: api.JobTimedOut}, api.ClassFailed},
		{"docker error", api.Job{Status: api.JobDockerError}, api.ClassFailed},
		{"not found", api.Job{Status: api.JobNotFound}, api.ClassFailed},
		{"failed to start", api.Job{Status: api.JobFailedToStart}, api.ClassFailed},
		{"finished ok", api.Job{Status: api.JobFinished, ExitCode: exit(0)}, api.ClassSucceeded},
		{"finished ko", api.Job{Status: api.JobFinished, ExitCode: exit(1)}, api.ClassFailed},
		{"finished without exit code", api.Job{Status: api.JobFinished}, api.ClassFailed},
		{"cancelled", api.Job{Status: api.JobCancelled}, api.ClassCancelled},
		{"dependency failed", api.Job{Status: api.JobDependencyFailed}, api.ClassCancelled},
		{"unknown", api.Job{Status: api.JobStatus(99)}, api.ClassCancelled},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ClassifyJob(c.job))
		})
	}
}

var (
	running    = api.Job{Status: api.JobRunning}
	notStarted = api.Job{Status: api.JobNotStarted}
	succeeded  = api.Job{Status: api.JobFinished, ExitCode: exit(0)}
	failed     = api.Job{Status: api.JobFinished, ExitCode: exit(2)}
	cancelled  = api.Job{Status: api.JobCancelled}
)

func TestClassifyStage(t *testing.T) {
	assert.Equal(t, api.ClassRunning, ClassifyStage([]api.Job{running, succeeded}))
	assert.Equal(t, api.ClassFailed, ClassifyStage([]api.Job{failed, succeeded}))
	assert.Equal(t, api.ClassCancelled, ClassifyStage([]api.Job{cancelled, succeeded}))
	assert.Equal(t, api.ClassSucceeded, ClassifyStage([]api.Job{succeeded, succeeded}))
	assert.Equal(t, api.ClassSucceeded, ClassifyStage(nil))

	t.Run("precedence", func(t *testing.T) {
		assert.Equal(t, api.ClassRunning, ClassifyStage([]api.Job{failed, cancelled, notStarted, running}))
		assert.Equal(t, api.ClassNotStarted, ClassifyStage([]api.Job{failed, notStarted, cancelled}))
		assert.Equal(t, api.ClassCancelled, ClassifyStage([]api.Job{failed, cancelled}))
	})

	t.Run("order independent", func(t *testing.T) {
		members := []api.Job{failed, succeeded, cancelled, notStarted, running}
		for i := range members {
			rotated := append(append([]api.Job{}, members[i:]...), members[:i]...)
			assert.Equal(t, api.ClassRunning, ClassifyStage(rotated))
			without := append([]api.Job{}, rotated...)
			for k := range without {
				if without[k].Status == api.JobRunning {
					without = append(without[:k], without[k+1:]...)
					break
				}
			}
			assert.Equal(t, api.ClassNotStarted, ClassifyStage(without))
		}
	})
}

func TestClassifyLayer(t *testing.T) {
	a := running
	a.ID = 1
	b := succeeded
	b.ID = 2
	g, err := graph.BuildChildGraph([]api.Job{a, b})
	require.NoError(t, err)
	stages, err := graph.TopologicalLayers(g)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, api.ClassRunning, ClassifyLayer(stages[0]))
}

func TestClassForPipeline(t *testing.T) {
	assert.Equal(t, api.ClassNotStarted, ClassForPipeline(api.PipelineNotStarted))
	assert.Equal(t, api.ClassRunning, ClassForPipeline(api.PipelineRunning))
	assert.Equal(t, api.ClassFailed, ClassForPipeline(api.PipelineFailed))
	assert.Equal(t, api.ClassSucceeded, ClassForPipeline(api.PipelineFinished))
	assert.Equal(t, api.ClassCancelled, ClassForPipeline(api.PipelineCancelled))
	assert.Equal(t, api.ClassCancelled, ClassForPipeline(api.PipelineStatus(12)))
}
