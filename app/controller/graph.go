package main

import (
	"net/http"
	"strconv"

	"cidash/pkg/api"
	"cidash/pkg/client"
	"cidash/pkg/events"
	"cidash/pkg/graph"
	"cidash/pkg/util/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h handlers) PipelineGraph(c echo.Context) error {
	pid, err := pipelineID(c)
	if err != nil {
		return err
	}
	ctx := context.WithPipelineID(context.FromContext(c.Request().Context()), pid)

	evt := h.watcher.Refresh(ctx, pid)
	if evt.Type != events.TypeError {
		return c.JSON(http.StatusOK, evt.View)
	}

	if errors.As(evt.Err, &client.ErrNotFound{}) {
		return echo.NewHTTPError(http.StatusNotFound, evt.Err.Error())
	}
	if evt.Stale {
		c.Response().Header().Set(api.HeaderStale, "true")
		return c.JSON(http.StatusOK, evt.View)
	}
	if isSnapshotError(evt.Err) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, evt.Err.Error())
	}
	return echo.NewHTTPError(http.StatusBadGateway, evt.Err.Error())
}

// isSnapshotError reports whether err comes from an inconsistent snapshot rather than from the backend.
func isSnapshotError(err error) bool {
	return errors.Is(err, graph.ErrCycleDetected) ||
		errors.Is(err, graph.ErrUnknownParent) ||
		errors.Is(err, graph.ErrDuplicateJob)
}

func pipelineID(c echo.Context) (api.PipelineID, error) {
	raw := c.Param(pipelineIDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid pipeline id "+raw)
	}
	return api.PipelineID(id), nil
}
