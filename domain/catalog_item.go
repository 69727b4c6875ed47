package domain

import (
	"strings"
	"time"
)

// CREATE TABLE public.catalog_items (
//     id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     sku           TEXT NOT NULL UNIQUE,
//     name          TEXT,
//     price         NUMERIC,
//     category      TEXT,
//     color_family  TEXT,
//     style_tags    JSONB,
//     brand         TEXT,
//     store_id      TEXT,
//     in_stock      BOOLEAN NOT NULL,
//     likes         BIGINT DEFAULT 0,
//     created_at    TIMESTAMPTZ DEFAULT NOW()
// );

const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryShoes     = "shoes"
	CategoryOuterwear = "outerwear"
	CategoryAccessory = "accessory"
)

// Categories lists every catalog category in display order.
var Categories = []string{
	CategoryTop,
	CategoryBottom,
	CategoryShoes,
	CategoryOuterwear,
	CategoryAccessory,
}

type CatalogItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-" yaml:"-"`
	SKU         string    `gorm:"column:sku;type:text;uniqueIndex" json:"sku" yaml:"sku"`
	Name        string    `gorm:"column:name;type:text" json:"name" yaml:"name"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price" yaml:"price"`
	Category    string    `gorm:"column:category;type:text" json:"category" yaml:"category"`
	ColorFamily string    `gorm:"column:color_family;type:text" json:"colorFamily" yaml:"colorFamily"`
	StyleTags   []string  `gorm:"column:style_tags;serializer:json" json:"styleTags" yaml:"styleTags"`
	Brand       string    `gorm:"column:brand;type:text" json:"brand" yaml:"brand"`
	StoreID     string    `gorm:"column:store_id;type:text;index" json:"storeId" yaml:"storeId"`
	InStock     bool      `gorm:"column:in_stock;not null" json:"inStock" yaml:"inStock"`
	Likes       int64     `gorm:"column:likes;default:0" json:"likes" yaml:"likes"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-" yaml:"-"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// Color returns the normalized color family used for matching.
func (i CatalogItem) Color() string {
	return NormalizeColor(i.ColorFamily)
}

// CatalogFilter narrows a catalog listing. Zero values match everything.
type CatalogFilter struct {
	StoreID     string
	Category    string
	InStockOnly bool
}

func (f CatalogFilter) Match(item CatalogItem) bool {
	if f.StoreID != "" && item.StoreID != f.StoreID {
		return false
	}
	if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
		return false
	}
	if f.InStockOnly && !item.InStock {
		return false
	}
	return true
}

// NormalizeColor lower-cases and trims a color family.
func NormalizeColor(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// IsCategory reports whether c is one of the fixed catalog categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
