//go:build !integration

package outfit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/domain"
)

type fakeCatalog struct {
	items []domain.CatalogItem
	err   error
}

func (f *fakeCatalog) List(_ context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.CatalogItem
	for _, it := range f.items {
		if filter.Match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) FindBySKU(_ context.Context, sku string) (domain.CatalogItem, bool, error) {
	if f.err != nil {
		return domain.CatalogItem{}, false, f.err
	}
	for _, it := range f.items {
		if it.SKU == sku {
			return it, true, nil
		}
	}
	return domain.CatalogItem{}, false, nil
}

type fakeSessions struct {
	snap domain.SessionSnapshot
	err  error
}

func (f *fakeSessions) Snapshot(context.Context) (domain.SessionSnapshot, error) {
	return f.snap, f.err
}

type fakeProfiles map[string]domain.CustomerProfile

func (f fakeProfiles) FindByCustomerID(_ context.Context, id string) (domain.CustomerProfile, bool, error) {
	p, ok := f[id]
	return p, ok, nil
}

func newTestService(t *testing.T, sessions *fakeSessions) *outfitService {
	t.Helper()
	profiles := fakeProfiles{"c1": {CustomerID: "c1", AvgPriceSpent: 50, PriceStdDev: 20}}
	svc, err := NewOutfitService(&fakeCatalog{items: exampleCatalog()}, sessions, profiles, DefaultConfig())
	require.NoError(t, err)
	return svc
}

func TestNewOutfitService_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PairWeights.Brand = 0.9

	_, err := NewOutfitService(&fakeCatalog{}, &fakeSessions{}, fakeProfiles{}, cfg)
	require.Error(t, err)
}

func TestRecommend_Errors(t *testing.T) {
	svc := newTestService(t, &fakeSessions{})
	ctx := context.Background()

	_, err := svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "baseSku is required", err.Error())

	_, err = svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "T1", StoreID: "store-9"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Recommend(cancelled, domain.RecommendRequest{BaseSKU: "T1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_CatalogFailureIsInternal(t *testing.T) {
	boom := errors.New("db down")
	svc, err := NewOutfitService(&fakeCatalog{err: boom}, &fakeSessions{}, fakeProfiles{}, DefaultConfig())
	require.NoError(t, err)

	_, err = svc.Recommend(context.Background(), domain.RecommendRequest{BaseSKU: "T1"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommend_Personalization(t *testing.T) {
	snap := domain.SessionSnapshot{
		"sess-1": {
			{SKU: "T1", Category: "top", Color: "blue", Price: "$40"},
			{SKU: "B1", Category: "bottom", Color: "neutral", Price: "60"},
		},
	}
	svc := newTestService(t, &fakeSessions{snap: snap})
	ctx := WithTraceID(context.Background(), "trace-1")

	anon, err := svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "T1", StoreID: testStore})
	require.NoError(t, err)
	assert.False(t, anon.CustomerPersonalized)
	assert.Equal(t, "T1", anon.BaseItem.SKU)
	assert.Equal(t, domain.StatsSummary{TotalSessions: 1, CategoryTransitions: 1, ColorPairs: 1, ItemPairs: 1}, anon.StatsSummary)

	bySession, err := svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "T1", SessionID: "sess-1"})
	require.NoError(t, err)
	assert.True(t, bySession.CustomerPersonalized)

	byCustomer, err := svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "T1", CustomerID: "c1"})
	require.NoError(t, err)
	assert.True(t, byCustomer.CustomerPersonalized)

	unknown, err := svc.Recommend(ctx, domain.RecommendRequest{BaseSKU: "T1", CustomerID: "ghost", SessionID: "ghost"})
	require.NoError(t, err)
	assert.False(t, unknown.CustomerPersonalized)
}

func TestRecommend_SessionOutageDegrades(t *testing.T) {
	svc := newTestService(t, &fakeSessions{err: errors.New("breaker open")})

	resp, err := svc.Recommend(context.Background(), domain.RecommendRequest{BaseSKU: "T1", TargetCategories: []string{"bottom"}})
	require.NoError(t, err)
	assert.Equal(t, domain.StatsSummary{}, resp.StatsSummary)
	require.NotEmpty(t, resp.Recommendations["bottom"])
	assert.Equal(t, 0.35, resp.Recommendations["bottom"][0].ScoreBreakdown.CoOccurrence)
}

func TestMixMatch(t *testing.T) {
	svc := newTestService(t, &fakeSessions{})

	resp, err := svc.MixMatch(context.Background(), domain.MixMatchRequest{BaseSKU: "T1", TopK: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCombinations)
	assert.Len(t, resp.Outfits, 3)
	assert.False(t, resp.CustomerPersonalized)

	_, err = svc.MixMatch(context.Background(), domain.MixMatchRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
