package view

import (
	"cidash/pkg/api"
	"cidash/pkg/status"
)

// Summary is a pipeline as shown in a pipeline list, with the class of each stage.
type Summary struct {
	ID         api.PipelineID     `json:"id"`
	Name       string             `json:"name"`
	Status     api.PipelineStatus `json:"status"`
	StatusText string             `json:"statusText"`
	Class      api.StatusClass    `json:"class"`
	Stages     []api.StatusClass  `json:"stages"`
	Error      string             `json:"error,omitempty"`
}

// Summarize returns the summary of the given snapshot.
// A snapshot that cannot be layered still gets a summary, without stages and with the error set.
func Summarize(p api.Pipeline) Summary {
	v, err := Build(p)
	if err != nil {
		return Summary{
			ID:         p.ID,
			Name:       p.Name,
			Status:     p.Status,
			StatusText: p.Status.String(),
			Class:      status.ClassForPipeline(p.Status),
			Error:      err.Error(),
		}
	}
	return v.Summary()
}

// Summary returns the summary of the view.
func (v PipelineView) Summary() Summary {
	s := Summary{
		ID:         v.ID,
		Name:       v.Name,
		Status:     v.Status,
		StatusText: v.StatusText,
		Class:      v.Class,
		Stages:     make([]api.StatusClass, len(v.Stages)),
	}
	for i, st := range v.Stages {
		s.Stages[i] = st.Class
	}
	return s
}
