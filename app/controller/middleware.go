package main

import (
	"cidash/pkg/api"
	"cidash/pkg/util/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// correlationID tags each request context with the caller's correlation ID, or a new one.
func correlationID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := req.Header.Get(api.HeaderCorrelationID)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := context.WithCorrelationID(context.FromContext(req.Context()), id)
		c.SetRequest(req.WithContext(ctx))
		c.Response().Header().Set(api.HeaderCorrelationID, id)
		return next(c)
	}
}
