package main

import (
	"fmt"
	"net/http"

	"cidash/pkg/api"
	"cidash/pkg/client"
	"cidash/pkg/util/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h handlers) CreatePipeline(c echo.Context) error {
	ctx := context.FromContext(c.Request().Context())

	var req client.CreatePipelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.cli.CreatePipeline(ctx, req)
	if err != nil {
		if errors.As(err, &client.ErrBadRequest{}) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	if res.ID != 0 {
		ctx = context.WithPipelineID(ctx, res.ID)
		c.Response().Header().Set(api.HeaderPipelineID, fmt.Sprint(int64(res.ID)))
	}
	ctx.Logger().Infof("pipeline %s created", req.Name)
	return c.JSON(http.StatusAccepted, res)
}
