package postgres

import (
	"context"
	"errors"
	"fmt"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository struct {
	DB *gorm.DB
}

var _ outfit.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// List returns matching items ordered by id, which is catalog order.
func (r *CatalogRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Model(&domain.CatalogItem{})
	if filter.StoreID != "" {
		q = q.Where("store_id = ?", filter.StoreID)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.InStockOnly {
		q = q.Where("in_stock = ?", true)
	}

	var items []domain.CatalogItem
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	return items, nil
}

func (r *CatalogRepository) FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, false, fmt.Errorf("context error: %w", err)
	}

	var item domain.CatalogItem
	err := r.DB.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CatalogItem{}, false, nil
	}
	if err != nil {
		return domain.CatalogItem{}, false, fmt.Errorf("failed to find catalog item: %w", err)
	}

	return item, true, nil
}

// Upsert inserts items or refreshes the row with the same SKU.
func (r *CatalogRepository) Upsert(ctx context.Context, items []domain.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"price",
				"category",
				"color_family",
				"style_tags",
				"brand",
				"store_id",
				"in_stock",
			}),
		}).
		Create(&items).Error
	if err != nil {
		return fmt.Errorf("failed to upsert catalog items: %w", err)
	}

	return nil
}
