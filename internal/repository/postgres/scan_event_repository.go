package postgres

import (
	"context"
	"fmt"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/domain"

	"gorm.io/gorm"
)

type ScanEventRepository struct {
	DB *gorm.DB
}

var _ outfit.SessionRepository = (*ScanEventRepository)(nil)

func NewScanEventRepository(db *gorm.DB) *ScanEventRepository {
	return &ScanEventRepository{DB: db}
}

func (r *ScanEventRepository) Append(ctx context.Context, event *domain.ScanEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create scan event: %w", err)
	}

	return nil
}

func (r *ScanEventRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.ScanEvent
	err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find scan events: %w", err)
	}

	return events, nil
}

// Snapshot loads the whole scan log grouped by session, each session in
// scan order.
func (r *ScanEventRepository) Snapshot(ctx context.Context) (domain.SessionSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.ScanEvent
	err := r.DB.WithContext(ctx).
		Order("session_id ASC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load scan events: %w", err)
	}

	snap := make(domain.SessionSnapshot)
	for _, ev := range events {
		snap[ev.SessionID] = append(snap[ev.SessionID], ev)
	}
	return snap, nil
}
