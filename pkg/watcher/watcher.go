// Package watcher keeps pipeline views up to date.
//
// A watcher refreshes a pipeline view on a timer and whenever the backend
// notifies a change. Each refresh fetches a fresh snapshot and rebuilds the
// view from scratch; the last good view is kept in a store so that it can
// still be shown while the backend is unreachable or sends an inconsistent
// snapshot.
package watcher

import (
	gocontext "context"
	"time"

	"cidash/pkg/api"
	"cidash/pkg/client"
	"cidash/pkg/events"
	"cidash/pkg/store"
	"cidash/pkg/util/context"
	"cidash/pkg/view"

	"github.com/pkg/errors"
)

// DefaultInterval is the refresh interval used when none is set.
const DefaultInterval = time.Second

// Fetcher fetches pipeline snapshots.
type Fetcher interface {
	Pipeline(ctx gocontext.Context, id api.PipelineID) (client.PipelineResponse, error)
}

// Notifier signals backend changes.
type Notifier interface {
	Subscribe(ctx gocontext.Context) (<-chan struct{}, error)
}

// HandleFunc is called for every refresh.
type HandleFunc func(ctx context.Context, evt events.Event)

// Options configures a watcher.
type Options struct {
	// Interval between two refreshes without notification.
	Interval time.Duration
	// Notifier triggers a refresh on each change, optional.
	Notifier Notifier
	// Store keeps the last good views, optional.
	Store store.ViewStore
	// StopWhenFinished makes Run return once the pipeline reached a final status.
	StopWhenFinished bool
}

// Watcher refreshes pipeline views.
type Watcher struct {
	fetcher Fetcher
	opts    Options
	now     func() time.Time
}

// New returns a new watcher.
func New(f Fetcher, opts Options) *Watcher {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Watcher{
		fetcher: f,
		opts:    opts,
		now:     time.Now,
	}
}

// Refresh fetches the pipeline once and returns the resulting event.
func (w *Watcher) Refresh(ctx context.Context, pid api.PipelineID) events.Event {
	evt := events.Event{
		PipelineID: pid,
		Time:       w.now(),
	}

	v, err := w.build(ctx, pid)
	if err != nil {
		ctx.Logger().Warnf("cannot refresh pipeline: %s", err)
		evt.Type = events.TypeError
		evt.Err = err
		if w.opts.Store != nil {
			if e, err := w.opts.Store.GetView(ctx, pid); err == nil {
				evt.View = &e.View
				evt.Stale = true
			}
		}
		return evt
	}

	if w.opts.Store != nil {
		if err := w.opts.Store.SetView(ctx, v); err != nil {
			ctx.Logger().Errorf("cannot store view: %s", err)
		}
	}
	evt.View = &v
	evt.Type = events.TypeUpdate
	if v.Finished() {
		evt.Type = events.TypeFinished
	}
	return evt
}

func (w *Watcher) build(ctx context.Context, pid api.PipelineID) (view.PipelineView, error) {
	p, err := w.fetcher.Pipeline(ctx, pid)
	if err != nil {
		return view.PipelineView{}, errors.Wrapf(err, "cannot fetch pipeline %d", pid)
	}
	return view.Build(api.Pipeline(p))
}

// Run refreshes the pipeline until ctx is done, calling f after each refresh.
// It returns nil when StopWhenFinished is set and the pipeline finished, ctx's error otherwise.
func (w *Watcher) Run(ctx context.Context, pid api.PipelineID, f HandleFunc) error {
	ctx = context.WithPipelineID(ctx, pid)

	var notify <-chan struct{}
	if w.opts.Notifier != nil {
		ch, err := w.opts.Notifier.Subscribe(ctx)
		if err != nil {
			ctx.Logger().Warnf("change notifications disabled: %s", err)
		} else {
			notify = ch
		}
	}

	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()
	for {
		evt := w.Refresh(ctx, pid)
		f(ctx, evt)
		if evt.Type == events.TypeFinished && w.opts.StopWhenFinished {
			ctx.Logger().Infof("pipeline finished with status %s", evt.View.StatusText)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case _, ok := <-notify:
			if !ok {
				ctx.Logger().Warn("change notifications lost, polling only")
				notify = nil
			}
		}
	}
}
