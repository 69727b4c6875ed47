package rest

import (
	"context"
	"errors"
	"net/http"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OutfitHandler struct {
		validate      *validator.Validate
		outfitService OutfitService
		timeout       time.Duration
	}

	OutfitService interface {
		Recommend(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendResponse, error)
		MixMatch(ctx context.Context, req domain.MixMatchRequest) (*domain.MixMatchResponse, error)
	}
)

func NewOutfitHandler(svc OutfitService, timeout time.Duration) *OutfitHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OutfitHandler{
		validate:      newValidator(),
		outfitService: svc,
		timeout:       timeout,
	}
}

// POST /api/v1/recommendations
func (h *OutfitHandler) Recommend(c echo.Context) error {
	var req domain.RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	resp, err := h.outfitService.Recommend(ctx, req)
	metrics.EngineLatency.WithLabelValues("recommend").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EngineErrors.WithLabelValues("recommend", errorKind(err)).Inc()
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// POST /api/v1/recommendations/mix-match
func (h *OutfitHandler) MixMatch(c echo.Context) error {
	var req domain.MixMatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	resp, err := h.outfitService.MixMatch(ctx, req)
	metrics.EngineLatency.WithLabelValues("mix_match").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EngineErrors.WithLabelValues("mix_match", errorKind(err)).Inc()
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
