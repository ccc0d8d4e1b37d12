package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns a trace identifier to every request. An incoming
// X-Request-ID is honored so callers can correlate across systems; otherwise a
// new UUID is generated. The ID is stored in the context for the error envelope
// and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(echo.HeaderXRequestID)
			if traceID == "" {
				traceID = uuid.New().String()
			}
			c.Set("trace_id", traceID)
			c.Response().Header().Set(echo.HeaderXRequestID, traceID)
			return next(c)
		}
	}
}
