package outfit

import (
	"sort"
	"strings"

	"vestiaKiosk/domain"
)

// RecommendByCategory ranks catalog candidates for each target category
// against base. Candidates are in stock, in the base item's store and never
// in the base item's own category, so a target equal to that category
// yields an empty list. Ties keep catalog order.
func (s *Scorer) RecommendByCategory(
	base domain.CatalogItem,
	catalog []domain.CatalogItem,
	targets []string,
	topK int,
	p *domain.CustomerProfile,
	m *domain.StatisticalMatrices,
) map[string][]domain.RecommendedItem {
	if topK <= 0 {
		topK = s.cfg.DefaultRecommendK
	}
	targets = resolveTargets(base.Category, targets)

	out := make(map[string][]domain.RecommendedItem, len(targets))
	for _, target := range targets {
		recs := make([]domain.RecommendedItem, 0, topK)
		for _, cand := range candidatesFor(base, catalog, target) {
			c := s.Score(base, cand, p, m)
			recs = append(recs, domain.RecommendedItem{
				SKU:            cand.SKU,
				Name:           cand.Name,
				Brand:          cand.Brand,
				Price:          cand.Price,
				Color:          cand.ColorFamily,
				StyleTags:      cand.StyleTags,
				Score:          c.Score,
				ScoreBreakdown: roundComponents(c),
				Explanations:   s.Explain(base, cand, c, p, m),
			})
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Score > recs[j].Score
		})
		if len(recs) > topK {
			recs = recs[:topK]
		}
		out[target] = recs
	}
	return out
}

// resolveTargets lower-cases and de-duplicates the requested categories. An
// empty request means every category other than the base item's own.
func resolveTargets(baseCategory string, targets []string) []string {
	baseCategory = normalize(baseCategory)
	if len(targets) == 0 {
		out := make([]string, 0, len(domain.Categories))
		for _, c := range domain.Categories {
			if c != baseCategory {
				out = append(out, c)
			}
		}
		return out
	}

	seen := make(map[string]struct{}, len(targets))
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		t = normalize(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func candidatesFor(base domain.CatalogItem, catalog []domain.CatalogItem, target string) []domain.CatalogItem {
	if strings.EqualFold(target, base.Category) {
		return nil
	}
	filter := domain.CatalogFilter{StoreID: base.StoreID, Category: target, InStockOnly: true}
	var out []domain.CatalogItem
	for _, item := range catalog {
		if item.SKU == base.SKU || strings.EqualFold(item.Category, base.Category) {
			continue
		}
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out
}
