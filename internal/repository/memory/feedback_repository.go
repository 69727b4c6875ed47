package memory

import (
	"context"
	"fmt"
	"sync"
	"vestiaKiosk/domain"
)

type FeedbackRepository struct {
	mu       sync.RWMutex
	feedback []domain.Feedback
	nextID   uint64
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	fb.ID = r.nextID
	r.feedback = append(r.feedback, *fb)
	return nil
}

// Summary averages every rating; no feedback averages to zero.
func (r *FeedbackRepository) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.feedback) == 0 {
		return domain.FeedbackSummary{}, nil
	}
	total := 0.0
	for _, fb := range r.feedback {
		total += fb.Rating
	}
	return domain.FeedbackSummary{
		Count:     len(r.feedback),
		AvgRating: total / float64(len(r.feedback)),
	}, nil
}
