//go:build !integration

package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/domain"
)

func TestBuildStatisticalMatrices_Empty(t *testing.T) {
	for name, snap := range map[string]domain.SessionSnapshot{
		"nil":          nil,
		"empty":        {},
		"single scans": {"s1": {scan("A", "top", "blue")}, "s2": {scan("B", "bottom", "black")}},
	} {
		t.Run(name, func(t *testing.T) {
			m := BuildStatisticalMatrices(snap)
			require.NotNil(t, m)
			assert.Empty(t, m.CategoryTransitions)
			assert.Empty(t, m.ColorPairs)
			assert.Empty(t, m.ItemPairs)
			assert.Empty(t, m.ItemPairCounts)
		})
	}
}

func TestBuildStatisticalMatrices_Normalization(t *testing.T) {
	snap := domain.SessionSnapshot{
		"s1": {scan("A", "top", "Blue"), scan("B", "bottom", "neutral"), scan("C", "shoes", "white")},
		"s2": {scan("A", "top", "blue"), scan("B", "bottom", "Neutral")},
		"s3": {scan("D", "top", "red")},
	}

	m := BuildStatisticalMatrices(snap)

	assert.Equal(t, 2, m.CategoryTransitionCounts["top->bottom"])
	assert.InDelta(t, 2.0/3.0, m.CategoryTransitions["top->bottom"], 1e-9)
	assert.InDelta(t, 1.0/3.0, m.CategoryTransitions["top->shoes"], 1e-9)
	assert.InDelta(t, 1.0, m.CategoryTransitions["bottom->shoes"], 1e-9)
	_, reversed := m.CategoryTransitions["bottom->top"]
	assert.False(t, reversed, "transitions follow scan order")

	assert.Equal(t, 2, m.ColorPairCounts["blue|neutral"])
	assert.InDelta(t, 0.5, m.ColorPairs["blue|neutral"], 1e-9)
	assert.InDelta(t, 0.25, m.ColorPairs["blue|white"], 1e-9)
	assert.InDelta(t, 0.25, m.ColorPairs["neutral|white"], 1e-9)

	assert.Equal(t, 2, m.ItemPairCounts["A|B"])
	assert.InDelta(t, 0.5, m.ItemPairs["A|B"], 1e-9)

	assert.Equal(t, domain.StatsSummary{
		TotalSessions:       3,
		CategoryTransitions: 3,
		ColorPairs:          3,
		ItemPairs:           3,
	}, m.Summary())
}

func TestBuildStatisticalMatrices_PairKeysAreUnordered(t *testing.T) {
	snap := domain.SessionSnapshot{
		"s1": {scan("B", "bottom", "white"), scan("A", "top", "black")},
		"s2": {scan("A", "top", "black"), scan("B", "bottom", "white")},
	}
	m := BuildStatisticalMatrices(snap)

	assert.Equal(t, 2, m.ItemPairCounts["A|B"])
	assert.Equal(t, 2, m.ColorPairCounts["black|white"])
	assert.Equal(t, 1, m.CategoryTransitionCounts["bottom->top"])
	assert.Equal(t, 1, m.CategoryTransitionCounts["top->bottom"])
	assert.InDelta(t, 1.0, m.ItemPairs["A|B"], 1e-9)
}

func TestBuildStatisticalMatrices_PairSessionsCountEachSessionOnce(t *testing.T) {
	snap := domain.SessionSnapshot{
		"s1": {scan("A", "top", "black"), scan("B", "bottom", "white"), scan("A", "top", "black")},
		"s2": {scan("A", "top", "black"), scan("B", "bottom", "white")},
	}
	m := BuildStatisticalMatrices(snap)

	assert.Equal(t, 3, m.ItemPairCounts["A|B"])
	assert.Equal(t, 2, m.ItemPairSessions["A|B"])
	assert.Equal(t, 1, m.ItemPairSessions["A|A"])
}

func TestBuildStatisticalMatrices_SkipsMissingFields(t *testing.T) {
	snap := domain.SessionSnapshot{
		"s1": {
			{SKU: "A", Category: "top"},
			{SKU: "B", Color: "black"},
		},
	}
	m := BuildStatisticalMatrices(snap)

	assert.Empty(t, m.CategoryTransitions)
	assert.Empty(t, m.ColorPairs)
	assert.Equal(t, 1, m.ItemPairCounts["A|B"])
}

func TestBuildStatisticalMatrices_ProbabilitiesBounded(t *testing.T) {
	snap := domain.SessionSnapshot{}
	colors := []string{"black", "white", "blue", "red"}
	cats := []string{"top", "bottom", "shoes"}
	for s := 0; s < 20; s++ {
		var items []domain.ScanEvent
		for i := 0; i < 4; i++ {
			items = append(items, scan(string(rune('A'+(s+i)%7)), cats[(s+i)%3], colors[(s*i)%4]))
		}
		snap[string(rune('a'+s))] = items
	}
	m := BuildStatisticalMatrices(snap)

	perSource := map[string]float64{}
	for k, v := range m.CategoryTransitions {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		from, _ := splitTransitionKey(k)
		perSource[from] += v
	}
	for from, total := range perSource {
		assert.InDelta(t, 1.0, total, 1e-9, "transitions from %s", from)
	}

	colorTotal := 0.0
	for _, v := range m.ColorPairs {
		colorTotal += v
	}
	assert.InDelta(t, 1.0, colorTotal, 1e-9)
}
