package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
	"vestiaKiosk/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RequestHandler struct {
		validate       *validator.Validate
		requestService RequestService
		timeout        time.Duration
	}

	RequestService interface {
		CreateRequest(ctx context.Context, in domain.CreateChangeRoomRequest) (*domain.ChangeRoomRequest, error)
		ListRequests(ctx context.Context, storeID string) ([]domain.ChangeRoomRequest, error)
		UpdateStatus(ctx context.Context, id uint64, in domain.UpdateRequestStatus) (*domain.ChangeRoomRequest, error)
		SessionStatuses(ctx context.Context, sessionID string) ([]domain.RequestStatusUpdate, error)
	}
)

func NewRequestHandler(svc RequestService) *RequestHandler {
	return &RequestHandler{
		validate:       newValidator(),
		requestService: svc,
		timeout:        10 * time.Second,
	}
}

// POST /api/v1/request
func (h *RequestHandler) Create(c echo.Context) error {
	var in domain.CreateChangeRoomRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "sessionId and sku are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	req, err := h.requestService.CreateRequest(ctx, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(req))
}

// GET /api/v1/requests?storeId=
func (h *RequestHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reqs, err := h.requestService.ListRequests(ctx, c.QueryParam("storeId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reqs))
}

// POST /api/v1/request/:id/status
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Error: "Request not found"})
	}

	var in domain.UpdateRequestStatus
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	req, err := h.requestService.UpdateStatus(ctx, id, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(req))
}

// GET /api/v1/requests/status/:sessionId
func (h *RequestHandler) SessionStatuses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updates, err := h.requestService.SessionStatuses(ctx, c.Param("sessionId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updates))
}
