package catalog

import (
	"context"
	"fmt"
	"strings"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
	FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, bool, error)
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) ListItems(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when list catalog")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if filter.Category != "" {
		filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
		if !domain.IsCategory(filter.Category) {
			return nil, domain.Validationf("unknown category %q", filter.Category)
		}
	}

	items, err := s.catalogRepo.List(ctx, filter)
	if err != nil {
		logger.Error("failed to list catalog", err)
		return nil, err
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}

	return items, nil
}

// GetItem returns one catalog item. A non-empty storeID must match the
// item's store.
func (s *catalogService) GetItem(ctx context.Context, sku, storeID string) (*domain.CatalogItem, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, domain.Validationf("sku is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get catalog item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	item, ok, err := s.catalogRepo.FindBySKU(ctx, sku)
	if err != nil {
		logger.Error("failed to find catalog item", "sku", sku, "error", err)
		return nil, err
	}
	if !ok || (storeID != "" && item.StoreID != storeID) {
		return nil, domain.NotFoundf("item %s not found", sku)
	}

	return &item, nil
}
