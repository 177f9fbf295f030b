package cmd

import (
	"testing"

	"cidash/pkg/graph"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefinition(t *testing.T) {
	req, err := readDefinition("tstdata/pipeline.json")
	require.NoError(t, err)
	assert.Equal(t, "build", req.Name)
	require.Len(t, req.Jobs, 3)
	require.NotNil(t, req.Jobs[1].TimeoutSecs)
	assert.Equal(t, 600.0, *req.Jobs[1].TimeoutSecs)
	assert.Equal(t, []string{"compile"}, req.Parents["lint"])

	_, err = readDefinition("tstdata/cycle.json")
	assert.True(t, errors.Is(err, graph.ErrCycleDetected))

	_, err = readDefinition("tstdata/missing.json")
	assert.Error(t, err)
}
