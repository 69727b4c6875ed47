package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/domain"
	"vestiaKiosk/internal/repository/memory"
)

func newService() *catalogService {
	return NewCatalogService(memory.NewCatalogRepository([]domain.CatalogItem{
		{SKU: "T1", Category: "top", StoreID: "s1", InStock: true},
		{SKU: "B1", Category: "bottom", StoreID: "s1", InStock: true},
		{SKU: "B2", Category: "bottom", StoreID: "s2", InStock: false},
	}))
}

func TestListItems(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	items, err := svc.ListItems(ctx, domain.CatalogFilter{Category: "Bottom"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.ListItems(ctx, domain.CatalogFilter{Category: "bottom", InStockOnly: true})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = svc.ListItems(ctx, domain.CatalogFilter{StoreID: "nowhere"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = svc.ListItems(ctx, domain.CatalogFilter{Category: "hat"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetItem(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	item, err := svc.GetItem(ctx, "T1", "")
	require.NoError(t, err)
	assert.Equal(t, "T1", item.SKU)

	item, err = svc.GetItem(ctx, "T1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", item.StoreID)

	_, err = svc.GetItem(ctx, "T1", "s2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetItem(ctx, "ZZ", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetItem(ctx, " ", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
