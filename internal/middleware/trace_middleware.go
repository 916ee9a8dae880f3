package middleware

import (
	"runGuard/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware puts the request id on the request context so service logs can be correlated.
// It reuses the id set by echo's RequestID middleware when present.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Response().Header().Get(echo.HeaderXRequestID)
			if traceID == "" {
				traceID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" {
				traceID = uuid.NewString()
				c.Response().Header().Set(echo.HeaderXRequestID, traceID)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(recommend.WithTraceID(req.Context(), traceID)))

			return next(c)
		}
	}
}
