package context

import (
	gocontext "context"
	"fmt"

	"cidash/pkg/api"

	"github.com/sirupsen/logrus"
)

// Context extends the regular golang context.Context interface with a logger and request scoped identifiers.
type Context interface {
	gocontext.Context
	Logger() *logrus.Entry
	PipelineID() api.PipelineID
	CorrelationID() string
	JobID() api.JobID
}

// Background returns a non-nil, empty Context.
func Background() Context {
	return ctx{
		Context: gocontext.Background(),
	}
}

// FromContext returns a new context from the given go context.
// Identifiers already carried by c are kept.
func FromContext(c gocontext.Context) Context {
	if asCtx, ok := c.(Context); ok {
		return asCtx
	}
	return ctx{
		Context: c,
	}
}

// WithPipelineID returns a copy of the context with a pipelineID.
func WithPipelineID(c Context, pid api.PipelineID) Context {
	return ctx{
		c,
		pid,
		c.CorrelationID(),
		c.JobID(),
	}
}

// WithCorrelationID returns a copy of the context with a correlationID.
func WithCorrelationID(c Context, correlationID string) Context {
	return ctx{
		c,
		c.PipelineID(),
		correlationID,
		c.JobID(),
	}
}

// WithJobID returns a copy of the context with a jobID.
func WithJobID(c Context, jobID api.JobID) Context {
	return ctx{
		c,
		c.PipelineID(),
		c.CorrelationID(),
		jobID,
	}
}

type ctx struct {
	gocontext.Context
	pipelineID    api.PipelineID
	correlationID string
	jobID         api.JobID
}

func (c ctx) Logger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	e := logrus.NewEntry(l)
	if c.PipelineID() != 0 {
		e = e.WithField("pipeline_id", fmt.Sprint(int64(c.PipelineID())))
	}
	if c.CorrelationID() != "" {
		e = e.WithField("correlation_id", c.CorrelationID())
	}
	if c.JobID() != 0 {
		e = e.WithField("job_id", fmt.Sprint(int64(c.JobID())))
	}
	return e
}

func (c ctx) PipelineID() api.PipelineID {
	return c.pipelineID
}

func (c ctx) CorrelationID() string {
	return c.correlationID
}

func (c ctx) JobID() api.JobID {
	return c.jobID
}
