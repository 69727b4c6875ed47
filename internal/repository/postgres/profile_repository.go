package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CREATE TABLE public.customer_profiles (
//     customer_id       TEXT PRIMARY KEY,
//     preferred_colors  JSONB,
//     brand_affinity    JSONB,
//     preferred_styles  JSONB,
//     avg_price_spent   NUMERIC,
//     price_std_dev     NUMERIC,
//     updated_at        TIMESTAMPTZ DEFAULT NOW()
// );

// profileRow stores frequency maps as JSONB.
type profileRow struct {
	CustomerID      string            `gorm:"column:customer_id;primaryKey"`
	PreferredColors datatypes.JSONMap `gorm:"column:preferred_colors;type:jsonb"`
	BrandAffinity   datatypes.JSONMap `gorm:"column:brand_affinity;type:jsonb"`
	PreferredStyles datatypes.JSONMap `gorm:"column:preferred_styles;type:jsonb"`
	AvgPriceSpent   float64           `gorm:"column:avg_price_spent"`
	PriceStdDev     float64           `gorm:"column:price_std_dev"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (profileRow) TableName() string {
	return "customer_profiles"
}

type ProfileRepository struct {
	DB *gorm.DB
}

var _ outfit.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByCustomerID(ctx context.Context, customerID string) (domain.CustomerProfile, bool, error) {
	var row profileRow

	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CustomerProfile{}, false, nil
	}
	if err != nil {
		return domain.CustomerProfile{}, false, fmt.Errorf("failed to find profile: %w", err)
	}

	return domain.CustomerProfile{
		CustomerID:      row.CustomerID,
		PreferredColors: fromJSONMap(row.PreferredColors),
		BrandAffinity:   fromJSONMap(row.BrandAffinity),
		PreferredStyles: fromJSONMap(row.PreferredStyles),
		AvgPriceSpent:   row.AvgPriceSpent,
		PriceStdDev:     row.PriceStdDev,
	}, true, nil
}

func (r *ProfileRepository) Save(ctx context.Context, p domain.CustomerProfile) error {
	row := profileRow{
		CustomerID:      p.CustomerID,
		PreferredColors: toJSONMap(p.PreferredColors),
		BrandAffinity:   toJSONMap(p.BrandAffinity),
		PreferredStyles: toJSONMap(p.PreferredStyles),
		AvgPriceSpent:   p.AvgPriceSpent,
		PriceStdDev:     p.PriceStdDev,
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preferred_colors",
				"brand_affinity",
				"preferred_styles",
				"avg_price_spent",
				"price_std_dev",
				"updated_at",
			}),
		}).
		Create(&row).Error
}

func toJSONMap(m map[string]float64) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// fromJSONMap reads numeric values back. Scanned maps hold json.Number.
func fromJSONMap(m datatypes.JSONMap) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		switch n := v.(type) {
		case json.Number:
			if f, err := n.Float64(); err == nil {
				out[k] = f
			}
		case float64:
			out[k] = n
		case int:
			out[k] = float64(n)
		case int64:
			out[k] = float64(n)
		}
	}
	return out
}
