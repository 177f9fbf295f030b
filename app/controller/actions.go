package main

import (
	gocontext "context"
	"net/http"

	"cidash/pkg/api"
	"cidash/pkg/client"
	"cidash/pkg/store"
	"cidash/pkg/util/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActionResponse is the response struct for the pipeline action endpoints
type ActionResponse struct {
	PipelineID api.PipelineID `json:"pipelineId"`
	Action     string         `json:"action"`
}

func (h handlers) CancelPipeline(c echo.Context) error {
	return h.action(c, "cancel", h.cli.CancelPipeline)
}

func (h handlers) UpdatePipeline(c echo.Context) error {
	return h.action(c, "update", h.cli.UpdatePipeline)
}

// action forwards a pipeline action to the backend.
// The cached view is dropped since it is outdated once the action is accepted.
func (h handlers) action(c echo.Context, name string, do func(gocontext.Context, api.PipelineID) error) error {
	pid, err := pipelineID(c)
	if err != nil {
		return err
	}
	ctx := context.WithPipelineID(context.FromContext(c.Request().Context()), pid)

	if err := do(ctx, pid); err != nil {
		if errors.As(err, &client.ErrNotFound{}) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, errors.Wrapf(err, "cannot %s pipeline", name).Error())
	}
	if err := h.store.DeleteView(ctx, pid); err != nil && !store.IsNotFound(err) {
		ctx.Logger().Warnf("cannot drop cached view: %s", err)
	}
	ctx.Logger().Infof("pipeline %s requested", name)
	return c.JSON(http.StatusAccepted, ActionResponse{PipelineID: pid, Action: name})
}
