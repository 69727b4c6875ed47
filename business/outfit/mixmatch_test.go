//go:build !integration

package outfit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/domain"
)

func exampleCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		item("T1", "top", "blue", 40, "casual"),
		item("B1", "bottom", "neutral", 60, "casual"),
		item("B2", "bottom", "black", 55),
		item("S1", "shoes", "white", 80, "sport"),
		item("S2", "shoes", "black", 90),
	}
}

func TestGenerateOutfits_Example(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := exampleCatalog()

	res := s.GenerateOutfits(catalog[0], catalog, 0, nil, BuildStatisticalMatrices(nil))

	assert.Equal(t, 4, res.Enumerated)
	assert.Equal(t, 0, res.Rejected)
	assert.Equal(t, 4, res.TotalCombinations)
	require.Len(t, res.Outfits, 4)

	for i, o := range res.Outfits {
		assert.Equal(t, fmt.Sprintf("T1-%d", i+1), o.OutfitID)
		assert.Equal(t, "T1", o.Items.Top.SKU)
		assert.Equal(t, 1.0, o.ScoreBreakdown.CategoryBalance)
		assert.Equal(t, 0.5, o.ScoreBreakdown.Personalization)
		assert.NotEmpty(t, o.Explanations)
		if i > 0 {
			assert.GreaterOrEqual(t, res.Outfits[i-1].Score, o.Score)
		}
		b := o.ScoreBreakdown
		weighted := 0.3*b.ColorHarmony + 0.25*b.StyleConsistency + 0.25*b.Personalization + 0.2*b.CoOccurrence
		assert.InDelta(t, weighted, o.Score, 0.002)
	}
}

func TestGenerateOutfits_TopK(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := exampleCatalog()

	res := s.GenerateOutfits(catalog[0], catalog, 2, nil, nil)

	assert.Equal(t, 4, res.TotalCombinations)
	require.Len(t, res.Outfits, 2)
	assert.Equal(t, "T1-1", res.Outfits[0].OutfitID)
	assert.Equal(t, "T1-2", res.Outfits[1].OutfitID)

	full := s.GenerateOutfits(catalog[0], catalog, 10, nil, nil)
	assert.Equal(t, full.Outfits[:2], res.Outfits)
}

func TestGenerateOutfits_ClashRejected(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := []domain.CatalogItem{
		item("T1", "top", "red", 40),
		item("B1", "bottom", "green", 60),
		item("B2", "bottom", "black", 60),
		item("S1", "shoes", "black", 80),
		item("S2", "shoes", "orange", 80),
	}

	res := s.GenerateOutfits(catalog[0], catalog, 5, nil, nil)

	assert.Equal(t, 4, res.Enumerated)
	assert.Equal(t, 3, res.Rejected)
	assert.Equal(t, 1, res.TotalCombinations)
	require.Len(t, res.Outfits, 1)
	assert.Equal(t, "B2", res.Outfits[0].Items.Bottom.SKU)
	assert.Equal(t, "S1", res.Outfits[0].Items.Shoes.SKU)
}

func TestPassesColorCheck(t *testing.T) {
	s := NewScorer(DefaultConfig())
	clashes := [][2]string{{"red", "green"}, {"red", "orange"}, {"blue", "orange"}, {"purple", "yellow"}}

	for _, pair := range clashes {
		a, b := pair[0], pair[1]
		perms := [][3]string{
			{a, b, "black"}, {b, a, "black"},
			{a, "black", b}, {"black", a, b},
			{b, "white", a}, {"white", b, a},
		}
		for _, p := range perms {
			ok := s.PassesColorCheck(
				item("T", "top", p[0], 1), item("B", "bottom", p[1], 1), item("S", "shoes", p[2], 1))
			assert.False(t, ok, "%v should clash", p)
		}
	}

	assert.True(t, s.PassesColorCheck(
		item("T", "top", "blue", 1), item("B", "bottom", "neutral", 1), item("S", "shoes", "white", 1)))
	assert.True(t, s.PassesColorCheck(
		item("T", "top", "Red", 1), item("B", "bottom", "black", 1), item("S", "shoes", "red", 1)))
	assert.False(t, s.PassesColorCheck(
		item("T", "top", "RED", 1), item("B", "bottom", " Green", 1), item("S", "shoes", "black", 1)))
}

func TestGenerateOutfits_NonTopBaseUsesAllTops(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := []domain.CatalogItem{
		item("T1", "top", "white", 40),
		item("T2", "top", "black", 40),
		item("T3", "top", "grey", 40),
		item("B1", "bottom", "blue", 60),
		item("S1", "shoes", "black", 80),
		item("S2", "shoes", "white", 80),
		item("O1", "outerwear", "black", 120),
	}
	catalog[2].InStock = false
	other := item("T4", "top", "black", 40)
	other.StoreID = "store-2"
	catalog = append(catalog, other)

	res := s.GenerateOutfits(catalog[3], catalog, 10, nil, nil)

	assert.Equal(t, 4, res.Enumerated, "2 in-stock tops x 1 bottom x 2 shoes")
	assert.Equal(t, 4, res.TotalCombinations)
	for _, o := range res.Outfits {
		assert.NotEqual(t, "T3", o.Items.Top.SKU)
		assert.NotEqual(t, "T4", o.Items.Top.SKU)
	}
}

func TestGenerateOutfits_TiesKeepEnumerationOrder(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := []domain.CatalogItem{
		item("T1", "top", "black", 10),
		item("B1", "bottom", "black", 10),
		item("B2", "bottom", "black", 10),
		item("S1", "shoes", "black", 10),
		item("S2", "shoes", "black", 10),
	}

	res := s.GenerateOutfits(catalog[0], catalog, 3, nil, nil)

	require.Len(t, res.Outfits, 3)
	got := make([]string, 0, 3)
	for _, o := range res.Outfits {
		got = append(got, o.Items.Bottom.SKU+"/"+o.Items.Shoes.SKU)
	}
	assert.Equal(t, []string{"B1/S1", "B1/S2", "B2/S1"}, got)
}

func TestGenerateOutfits_EmptyPartition(t *testing.T) {
	s := NewScorer(DefaultConfig())
	catalog := []domain.CatalogItem{
		item("T1", "top", "black", 10),
		item("B1", "bottom", "black", 10),
	}

	res := s.GenerateOutfits(catalog[0], catalog, 5, nil, nil)

	assert.Equal(t, 0, res.Enumerated)
	assert.Equal(t, 0, res.TotalCombinations)
	assert.Empty(t, res.Outfits)
	assert.NotNil(t, res.Outfits)
}

func TestTripleIterator(t *testing.T) {
	parts := catalogPartition{
		"top":    {item("T1", "top", "", 0), item("T2", "top", "", 0)},
		"bottom": {item("B1", "bottom", "", 0)},
		"shoes":  {item("S1", "shoes", "", 0), item("S2", "shoes", "", 0)},
	}
	it := newTripleIterator(parts)
	assert.Equal(t, 4, it.Size())

	var got []string
	for tr, ok := it.Next(); ok; tr, ok = it.Next() {
		got = append(got, tr[0].SKU+tr[1].SKU+tr[2].SKU)
	}
	assert.Equal(t, []string{"T1B1S1", "T1B1S2", "T2B1S1", "T2B1S2"}, got)

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestStyleConsistencyAndPersonalization(t *testing.T) {
	s := NewScorer(DefaultConfig())
	items := [3]domain.CatalogItem{
		item("T1", "top", "blue", 1, "casual"),
		item("B1", "bottom", "black", 1, "Casual", "denim"),
		item("S1", "shoes", "white", 1, "sport"),
	}

	consistency, shared := s.styleConsistency(items)
	assert.InDelta(t, 1.0/3.0+0.3, consistency, 1e-9)
	assert.Equal(t, []string{"casual"}, shared)

	noTags := [3]domain.CatalogItem{item("a", "top", "", 1), item("b", "bottom", "", 1), item("c", "shoes", "", 1)}
	consistency, shared = s.styleConsistency(noTags)
	assert.Equal(t, 0.3, consistency)
	assert.Empty(t, shared)

	profile := &domain.CustomerProfile{
		PreferredColors: map[string]float64{"blue": 10, "black": 2},
		PreferredStyles: map[string]float64{"casual": 4},
	}
	// blue: 1 (clamped); black: 0.4 + 0.4 = 0.8; white: 0
	assert.InDelta(t, 1.8/3.0, s.personalization(items, profile), 1e-9)
	assert.Equal(t, 0.5, s.personalization(items, nil))
}
