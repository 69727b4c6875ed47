package memory

import (
	"context"
	"fmt"
	"sync"
	"vestiaKiosk/domain"
)

// CatalogRepository keeps the catalog in insertion order, which is the
// order ties are broken in when ranking.
type CatalogRepository struct {
	mu    sync.RWMutex
	items []domain.CatalogItem
	index map[string]int
}

func NewCatalogRepository(items []domain.CatalogItem) *CatalogRepository {
	r := &CatalogRepository{index: make(map[string]int)}
	r.Upsert(items...)
	return r
}

// Upsert replaces items with a known SKU in place and appends new ones.
func (r *CatalogRepository) Upsert(items ...domain.CatalogItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		if i, ok := r.index[it.SKU]; ok {
			r.items[i] = it
			continue
		}
		r.index[it.SKU] = len(r.items)
		r.items = append(r.items, it)
	}
}

func (r *CatalogRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CatalogItem, 0, len(r.items))
	for _, it := range r.items {
		if filter.Match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *CatalogRepository) FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, false, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[sku]
	if !ok {
		return domain.CatalogItem{}, false, nil
	}
	return r.items[i], true, nil
}
