package rest

import (
	"context"
	"net/http"
	"time"
	"vestiaKiosk/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SessionHandler struct {
		validate       *validator.Validate
		sessionService SessionService
		timeout        time.Duration
	}

	SessionService interface {
		ScanItem(ctx context.Context, req domain.ScanRequest) (*domain.ScanEvent, error)
		GetSession(ctx context.Context, sessionID string) (*domain.SessionRecord, error)
	}
)

func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{
		validate:       newValidator(),
		sessionService: svc,
		timeout:        10 * time.Second,
	}
}

// POST /api/v1/sessions/scan
func (h *SessionHandler) Scan(c echo.Context) error {
	var req domain.ScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "sessionId and sku are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event, err := h.sessionService.ScanItem(ctx, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(event))
}

// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	record, err := h.sessionService.GetSession(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(record))
}
