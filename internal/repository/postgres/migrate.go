package postgres

import (
	"context"
	"fmt"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"

	"gorm.io/gorm"
)

// Migrate creates or updates the kiosk tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.CatalogItem{},
		&domain.ScanEvent{},
		&profileRow{},
		&domain.ChangeRoomRequest{},
		&domain.Feedback{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Seed upserts catalog items and static profiles loaded from seed files.
func Seed(ctx context.Context, db *gorm.DB, items []domain.CatalogItem, profiles []domain.CustomerProfile) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewCatalogRepository(tx).Upsert(ctx, items); err != nil {
			return err
		}
		profileRepo := NewProfileRepository(tx)
		for _, p := range profiles {
			if err := profileRepo.Save(ctx, p); err != nil {
				return fmt.Errorf("failed to seed profile %s: %w", p.CustomerID, err)
			}
		}
		logger.Info("seed data applied", "catalog_items", len(items), "profiles", len(profiles))
		return nil
	})
}
