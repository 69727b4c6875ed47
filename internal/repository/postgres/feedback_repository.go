package postgres

import (
	"context"
	"fmt"
	"vestiaKiosk/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(fb).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

type feedbackSummaryRow struct {
	Total     int
	AvgRating float64
}

func (r *FeedbackRepository) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("context error: %w", err)
	}

	var row feedbackSummaryRow
	err := r.DB.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&row).Error
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("failed to summarize feedback: %w", err)
	}

	return domain.FeedbackSummary{Count: row.Total, AvgRating: row.AvgRating}, nil
}
