package store

import (
	"context"
	"time"

	"cidash/pkg/api"
	"cidash/pkg/view"
)

// Entry is a stored view with the time it was computed.
type Entry struct {
	View      view.PipelineView
	UpdatedAt time.Time
}

// ViewStore keeps the last good view of each pipeline, so that callers can
// keep showing it when a newer snapshot cannot be fetched or layered.
type ViewStore interface {
	// SetView stores the view of its pipeline, replacing the previous one.
	SetView(ctx context.Context, v view.PipelineView) error

	// GetView returns the last view stored for the pipeline.
	GetView(ctx context.Context, pid api.PipelineID) (Entry, error)

	// ListViews returns the stored views ordered by pipeline ID.
	ListViews(ctx context.Context) ([]Entry, error)

	// DeleteView forgets the view of the pipeline.
	DeleteView(ctx context.Context, pid api.PipelineID) error
}
