package analytics

import (
	"context"
	"fmt"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
)

type SessionRepository interface {
	Snapshot(ctx context.Context) (domain.SessionSnapshot, error)
}

type RequestRepository interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type FeedbackRepository interface {
	Summary(ctx context.Context) (domain.FeedbackSummary, error)
}

type analyticsService struct {
	sessionRepo  SessionRepository
	requestRepo  RequestRepository
	feedbackRepo FeedbackRepository
}

func NewAnalyticsService(sessionRepo SessionRepository, requestRepo RequestRepository, feedbackRepo FeedbackRepository) *analyticsService {
	return &analyticsService{
		sessionRepo:  sessionRepo,
		requestRepo:  requestRepo,
		feedbackRepo: feedbackRepo,
	}
}

// GetAnalytics counts sessions, requests and feedback across the kiosk.
func (s *analyticsService) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snapshot, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		logger.Error("failed to load sessions for analytics", "error", err)
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	byStatus, err := s.requestRepo.CountByStatus(ctx)
	if err != nil {
		logger.Error("failed to count requests for analytics", "error", err)
		return nil, fmt.Errorf("count requests: %w", err)
	}

	summary, err := s.feedbackRepo.Summary(ctx)
	if err != nil {
		logger.Error("failed to summarize feedback for analytics", "error", err)
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}

	out := &domain.Analytics{
		TotalSessions:    len(snapshot),
		TotalFeedback:    summary.Count,
		AvgRating:        summary.AvgRating,
		RequestsByStatus: make(map[string]int, len(byStatus)),
	}
	for status, n := range byStatus {
		out.RequestsByStatus[status] = n
		out.TotalRequests += n
	}
	return out, nil
}
