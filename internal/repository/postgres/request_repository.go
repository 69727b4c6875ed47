package postgres

import (
	"context"
	"errors"
	"fmt"
	"vestiaKiosk/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ChangeRoomRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create change-room request: %w", err)
	}

	return nil
}

func (r *RequestRepository) List(ctx context.Context, storeID string) ([]domain.ChangeRoomRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Model(&domain.ChangeRoomRequest{})
	if storeID != "" {
		q = q.Where("store_id = ?", storeID)
	}

	var reqs []domain.ChangeRoomRequest
	if err := q.Order("id ASC").Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list change-room requests: %w", err)
	}

	return reqs, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (domain.ChangeRoomRequest, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChangeRoomRequest{}, false, fmt.Errorf("context error: %w", err)
	}

	var req domain.ChangeRoomRequest
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ChangeRoomRequest{}, false, nil
	}
	if err != nil {
		return domain.ChangeRoomRequest{}, false, fmt.Errorf("failed to find change-room request: %w", err)
	}

	return req, true, nil
}

func (r *RequestRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ChangeRoomRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reqs []domain.ChangeRoomRequest
	err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find session requests: %w", err)
	}

	return reqs, nil
}

// Update writes the mutable status fields only.
func (r *RequestRepository) Update(ctx context.Context, req *domain.ChangeRoomRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	res := r.DB.WithContext(ctx).
		Model(&domain.ChangeRoomRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":      req.Status,
			"employee_id": req.EmployeeID,
			"updated_at":  req.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update change-room request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("change-room request %d: %w", req.ID, domain.ErrNotFound)
	}

	return nil
}

type statusCount struct {
	Status string
	Total  int
}

func (r *RequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []statusCount
	err := r.DB.WithContext(ctx).
		Model(&domain.ChangeRoomRequest{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count change-room requests: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
