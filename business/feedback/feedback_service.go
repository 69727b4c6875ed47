package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
	"vestiaKiosk/pkg/metrics"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
}

type feedbackService struct {
	feedbackRepo FeedbackRepository
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo FeedbackRepository) *feedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, in domain.FeedbackRequest) (*domain.Feedback, error) {
	in.SessionID = strings.TrimSpace(in.SessionID)
	if in.SessionID == "" {
		return nil, domain.Validationf("sessionId is required")
	}
	if in.Rating < 0 || in.Rating > domain.MaxRating {
		return nil, domain.Validationf("rating must be between 0 and %d", domain.MaxRating)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	fb := &domain.Feedback{
		SessionID: in.SessionID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: s.now().UTC(),
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		logger.Error("failed to save feedback", "session_id", fb.SessionID, "error", err)
		return nil, err
	}
	metrics.FeedbackRatings.Observe(fb.Rating)

	logger.Info("feedback received", "session_id", fb.SessionID, "rating", fb.Rating)
	return fb, nil
}
