package main

import (
	"net/http"

	"cidash/pkg/api"
	"cidash/pkg/util/context"
	"cidash/pkg/view"

	"github.com/labstack/echo/v4"
)

// ListPipelinesResponse is the response struct for the list pipelines endpoint
type ListPipelinesResponse struct {
	Pipelines []view.Summary `json:"pipelines"`
}

func (h handlers) ListPipelines(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())
	pipelines, err := h.cli.ListPipelines(ctx)
	if err != nil {
		return h.staleList(c, ctx, err)
	}

	res := ListPipelinesResponse{Pipelines: make([]view.Summary, 0, len(pipelines))}
	for _, p := range pipelines {
		s := view.Summarize(p)
		if s.Error != "" {
			ctx.Logger().WithField("pipeline_id", int64(p.ID)).Warnf("cannot layer pipeline: %s", s.Error)
		}
		res.Pipelines = append(res.Pipelines, s)
	}
	return c.JSON(http.StatusOK, res)
}

// staleList answers with the summaries of the cached views when the backend cannot list pipelines.
func (h handlers) staleList(c echo.Context, ctx context.Context, cause error) error {
	entries, err := h.store.ListViews(ctx)
	if err != nil || len(entries) == 0 {
		return echo.NewHTTPError(http.StatusBadGateway, cause.Error())
	}
	ctx.Logger().Warnf("cannot list pipelines, serving %d cached views: %s", len(entries), cause)

	res := ListPipelinesResponse{Pipelines: make([]view.Summary, len(entries))}
	for i, e := range entries {
		res.Pipelines[i] = e.View.Summary()
	}
	c.Response().Header().Set(api.HeaderStale, "true")
	return c.JSON(http.StatusOK, res)
}
