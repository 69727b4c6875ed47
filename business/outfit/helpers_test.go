//go:build !integration

package outfit

import "vestiaKiosk/domain"

const testStore = "store-1"

func item(sku, category, color string, price float64, tags ...string) domain.CatalogItem {
	return domain.CatalogItem{
		SKU:         sku,
		Name:        sku,
		Category:    category,
		ColorFamily: color,
		Price:       price,
		StyleTags:   tags,
		StoreID:     testStore,
		InStock:     true,
	}
}

func scan(sku, category, color string) domain.ScanEvent {
	return domain.ScanEvent{SKU: sku, Category: category, Color: color}
}
