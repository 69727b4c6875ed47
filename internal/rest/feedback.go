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
	FeedbackHandler struct {
		validate        *validator.Validate
		feedbackService FeedbackService
		timeout         time.Duration
	}

	FeedbackService interface {
		SubmitFeedback(ctx context.Context, in domain.FeedbackRequest) (*domain.Feedback, error)
	}
)

func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		validate:        newValidator(),
		feedbackService: svc,
		timeout:         10 * time.Second,
	}
}

// POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var in domain.FeedbackRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request body"})
	}
	if err := h.validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	fb, err := h.feedbackService.SubmitFeedback(ctx, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(fb))
}
