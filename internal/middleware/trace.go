package middleware

import (
	"time"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID takes the caller's X-Request-ID or mints one, echoes it back and
// stores it in the request context for the service layer.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.SetRequest(req.WithContext(outfit.WithTraceID(req.Context(), id)))
			return next(c)
		}
	}
}

// RequestLogger logs one line per request.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info("request",
				"trace_id", outfit.TraceIDFromContext(c.Request().Context()),
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency", time.Since(start),
			)
			return nil
		}
	}
}
