package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cidash/pkg/api"
	"cidash/pkg/view"
)

// NewInMemoryStore returns a new InMemory store
func NewInMemoryStore() (ViewStore, error) {
	return &inMemory{
		views: make(map[api.PipelineID]Entry),
		now:   time.Now,
	}, nil
}

type inMemory struct {
	mu    sync.RWMutex
	views map[api.PipelineID]Entry
	now   func() time.Time
}

func (s *inMemory) SetView(ctx context.Context, v view.PipelineView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.ID] = Entry{
		View:      v,
		UpdatedAt: s.now(),
	}
	return nil
}

func (s *inMemory) GetView(ctx context.Context, pid api.PipelineID) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, exists := s.views[pid]
	if !exists {
		return Entry{}, NotFoundError(fmt.Sprintf("view of pipeline %d", pid))
	}
	return e, nil
}

func (s *inMemory) ListViews(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	res := make([]Entry, 0, len(s.views))
	for _, e := range s.views {
		res = append(res, e)
	}
	s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].View.ID < res[j].View.ID
	})
	return res, nil
}

func (s *inMemory) DeleteView(ctx context.Context, pid api.PipelineID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.views[pid]; !exists {
		return NotFoundError(fmt.Sprintf("view of pipeline %d", pid))
	}
	delete(s.views, pid)
	return nil
}
