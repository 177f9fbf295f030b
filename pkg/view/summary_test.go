package view

import (
	"testing"

	"cidash/pkg/api"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	ok := 0
	s := Summarize(api.Pipeline{ID: 1, Name: "build", Status: api.PipelineRunning, Jobs: []api.Job{
		{ID: 1, Status: api.JobFinished, ExitCode: &ok},
		{ID: 2, Parents: []api.JobID{1}, Status: api.JobRunning},
		{ID: 3, Parents: []api.JobID{2}},
	}})
	assert.Equal(t, Summary{
		ID:         1,
		Name:       "build",
		Status:     api.PipelineRunning,
		StatusText: "Running",
		Class:      api.ClassRunning,
		Stages:     []api.StatusClass{api.ClassSucceeded, api.ClassRunning, api.ClassNotStarted},
	}, s)

	s = Summarize(api.Pipeline{ID: 2, Status: api.PipelineFailed, Jobs: []api.Job{
		{ID: 1, Parents: []api.JobID{7}},
	}})
	assert.Equal(t, api.ClassFailed, s.Class)
	assert.Nil(t, s.Stages)
	assert.Contains(t, s.Error, "unknown parent")

	s = Summarize(api.Pipeline{ID: 3})
	assert.Empty(t, s.Stages)
	assert.Empty(t, s.Error)
}

func TestViewSummary(t *testing.T) {
	ok := 0
	p := api.Pipeline{ID: 4, Name: "deploy", Status: api.PipelineFinished, Jobs: []api.Job{
		{ID: 1, Status: api.JobFinished, ExitCode: &ok},
		{ID: 2, Parents: []api.JobID{1}, Status: api.JobCancelled},
	}}
	v, err := Build(p)
	if !assert.NoError(t, err) {
		return
	}
	s := v.Summary()
	assert.Equal(t, Summarize(p), s)
	assert.Equal(t, []api.StatusClass{api.ClassSucceeded, api.ClassCancelled}, s.Stages)
}
