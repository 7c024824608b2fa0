package http

import (
	"golang-stock-ideas/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogContext copies the request id set by the RequestID middleware onto the
// request context so that service logs carry it.
func RequestLogContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
			}
			return next(c)
		}
	}
}
