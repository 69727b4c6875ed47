package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
}

// ErrorHandler writes every unhandled error as {"error": "..."}. Server
// errors are logged and reported with a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if status < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"trace_id", outfit.TraceIDFromContext(c.Request().Context()),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, errorBody{Error: message})
	}
	if writeErr != nil {
		logger.Error("failed to write error response", writeErr)
	}
}
