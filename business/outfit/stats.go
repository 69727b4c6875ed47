package outfit

import (
	"sort"

	"vestiaKiosk/domain"
)

// BuildStatisticalMatrices counts pairwise co-occurrences across every
// session with at least two scans and normalizes them into probabilities.
//
//	categoryTransitions["top->bottom"] = count(top->bottom) / count(top->any)
//	colorPairs["blue|white"]            = count(blue,white) / count(all color pairs)
//	itemPairs["SKU1|SKU2"]              = count(SKU1,SKU2) / count(all item pairs)
//
// Transitions are directed in scan order. Color and item pairs are
// unordered and keyed in sorted order. A pair is skipped for a table when
// either side lacks the field that table counts.
func BuildStatisticalMatrices(snapshot domain.SessionSnapshot) *domain.StatisticalMatrices {
	m := &domain.StatisticalMatrices{
		CategoryTransitions:      make(map[string]float64),
		ColorPairs:               make(map[string]float64),
		ItemPairs:                make(map[string]float64),
		CategoryTransitionCounts: make(map[string]int),
		ColorPairCounts:          make(map[string]int),
		ItemPairCounts:           make(map[string]int),
		ItemPairSessions:         make(map[string]int),
		SessionCount:             len(snapshot),
	}

	// source category -> total outgoing transitions
	sourceTotals := make(map[string]int)
	colorTotal, itemTotal := 0, 0

	// Sorted session ids keep iteration deterministic; counts do not depend on it.
	ids := make([]string, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		items := snapshot[id]
		if len(items) < 2 {
			continue
		}
		seenPairs := make(map[string]struct{})
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				a, b := items[i], items[j]

				from, to := normalize(a.Category), normalize(b.Category)
				if from != "" && to != "" {
					m.CategoryTransitionCounts[transitionKey(from, to)]++
					sourceTotals[from]++
				}

				ca, cb := normalize(a.Color), normalize(b.Color)
				if ca != "" && cb != "" {
					m.ColorPairCounts[pairKey(ca, cb)]++
					colorTotal++
				}

				if a.SKU != "" && b.SKU != "" {
					key := pairKey(a.SKU, b.SKU)
					m.ItemPairCounts[key]++
					itemTotal++
					if _, dup := seenPairs[key]; !dup {
						seenPairs[key] = struct{}{}
						m.ItemPairSessions[key]++
					}
				}
			}
		}
	}

	for key, count := range m.CategoryTransitionCounts {
		from, _ := splitTransitionKey(key)
		m.CategoryTransitions[key] = clamp01(float64(count) / float64(sourceTotals[from]))
	}
	for key, count := range m.ColorPairCounts {
		m.ColorPairs[key] = clamp01(float64(count) / float64(colorTotal))
	}
	for key, count := range m.ItemPairCounts {
		m.ItemPairs[key] = clamp01(float64(count) / float64(itemTotal))
	}

	return m
}

// colorPairShare returns the observed share for two colors, if any.
func colorPairShare(m *domain.StatisticalMatrices, a, b string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.ColorPairs[pairKey(normalize(a), normalize(b))]
	return v, ok
}

func itemPairShare(m *domain.StatisticalMatrices, skuA, skuB string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.ItemPairs[pairKey(skuA, skuB)]
	return v, ok
}

// itemPairSessions is the number of distinct sessions in which both SKUs
// were scanned.
func itemPairSessions(m *domain.StatisticalMatrices, skuA, skuB string) int {
	if m == nil {
		return 0
	}
	return m.ItemPairSessions[pairKey(skuA, skuB)]
}

func transitionProbability(m *domain.StatisticalMatrices, from, to string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.CategoryTransitions[transitionKey(normalize(from), normalize(to))]
	return v, ok
}
