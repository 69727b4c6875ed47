package rest

import (
	"context"
	"net/http"
	"time"
	"vestiaKiosk/domain"

	"github.com/labstack/echo/v4"
)

type (
	AnalyticsHandler struct {
		analyticsService AnalyticsService
		timeout          time.Duration
	}

	AnalyticsService interface {
		GetAnalytics(ctx context.Context) (*domain.Analytics, error)
	}
)

func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: svc,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/analytics
func (h *AnalyticsHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	out, err := h.analyticsService.GetAnalytics(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
