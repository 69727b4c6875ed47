package memory

import (
	"context"
	"fmt"
	"sync"
	"vestiaKiosk/domain"
)

// RequestRepository keeps change-room requests in creation order.
type RequestRepository struct {
	mu       sync.RWMutex
	requests []domain.ChangeRoomRequest
	byID     map[uint64]int
	nextID   uint64
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{byID: make(map[uint64]int)}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ChangeRoomRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	req.ID = r.nextID
	r.byID[req.ID] = len(r.requests)
	r.requests = append(r.requests, *req)
	return nil
}

func (r *RequestRepository) List(ctx context.Context, storeID string) ([]domain.ChangeRoomRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ChangeRoomRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if storeID == "" || req.StoreID == storeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (domain.ChangeRoomRequest, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChangeRoomRequest{}, false, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.ChangeRoomRequest{}, false, nil
	}
	return r.requests[idx], true, nil
}

func (r *RequestRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ChangeRoomRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.ChangeRoomRequest
	for _, req := range r.requests {
		if req.SessionID == sessionID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *RequestRepository) Update(ctx context.Context, req *domain.ChangeRoomRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[req.ID]
	if !ok {
		return fmt.Errorf("change-room request %d: %w", req.ID, domain.ErrNotFound)
	}
	r.requests[idx] = *req
	return nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, req := range r.requests {
		counts[req.Status]++
	}
	return counts, nil
}
