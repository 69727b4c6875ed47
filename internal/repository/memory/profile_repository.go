package memory

import (
	"context"
	"fmt"
	"sync"
	"vestiaKiosk/domain"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.CustomerProfile
}

func NewProfileRepository(profiles []domain.CustomerProfile) *ProfileRepository {
	r := &ProfileRepository{profiles: make(map[string]domain.CustomerProfile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.CustomerID] = p
	}
	return r
}

func (r *ProfileRepository) Save(ctx context.Context, p domain.CustomerProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if p.CustomerID == "" {
		return domain.Validationf("customerId is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.CustomerID] = p
	return nil
}

func (r *ProfileRepository) FindByCustomerID(ctx context.Context, customerID string) (domain.CustomerProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[customerID]
	return p, ok, nil
}
