package events

import (
	"fmt"
	"time"

	"cidash/pkg/api"
	"cidash/pkg/view"
)

// EventType type of event
type EventType string

const (
	// TypeUpdate a fresh view was computed
	TypeUpdate EventType = "UPDATE"
	// TypeError the snapshot could not be fetched or layered
	TypeError EventType = "ERROR"
	// TypeFinished a fresh view was computed and the pipeline reached a final status
	TypeFinished EventType = "FINISHED"
)

// Event is emitted by a watcher for each refresh of a pipeline.
type Event struct {
	Type       EventType
	PipelineID api.PipelineID
	// View is the fresh view, or for TypeError the last known one if any.
	View *view.PipelineView
	// Stale is true when View is not computed from the latest snapshot.
	Stale bool
	Err   error
	Time  time.Time
}

func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s for pipeline %d: %s", e.Type, e.PipelineID, e.Err)
	}
	return fmt.Sprintf("%s for pipeline %d", e.Type, e.PipelineID)
}
