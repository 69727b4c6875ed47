package outfit

import (
	"fmt"
	"math"
	"strings"

	"vestiaKiosk/domain"
)

// OutfitResult is the ranked output of outfit generation.
type OutfitResult struct {
	Outfits []domain.Outfit
	// TotalCombinations counts triples that passed the clash filter.
	TotalCombinations int
	Enumerated        int
	Rejected          int
}

// catalogPartition groups a store's in-stock catalog by category, keeping
// catalog order within each group.
type catalogPartition map[string][]domain.CatalogItem

func partitionCatalog(base domain.CatalogItem, catalog []domain.CatalogItem) catalogPartition {
	filter := domain.CatalogFilter{StoreID: base.StoreID, InStockOnly: true}
	parts := make(catalogPartition)
	for _, item := range catalog {
		if !filter.Match(item) {
			continue
		}
		cat := normalize(item.Category)
		parts[cat] = append(parts[cat], item)
	}
	if normalize(base.Category) == domain.CategoryTop {
		parts[domain.CategoryTop] = []domain.CatalogItem{base}
	}
	return parts
}

// tripleIterator walks tops x bottoms x shoes lazily in lexicographic order.
type tripleIterator struct {
	tops, bottoms, shoes []domain.CatalogItem
	i, j, k              int
}

func newTripleIterator(parts catalogPartition) *tripleIterator {
	return &tripleIterator{
		tops:    parts[domain.CategoryTop],
		bottoms: parts[domain.CategoryBottom],
		shoes:   parts[domain.CategoryShoes],
	}
}

// Size is the number of triples the iterator will yield.
func (it *tripleIterator) Size() int {
	return len(it.tops) * len(it.bottoms) * len(it.shoes)
}

func (it *tripleIterator) Next() ([3]domain.CatalogItem, bool) {
	if it.Size() == 0 || it.i >= len(it.tops) {
		return [3]domain.CatalogItem{}, false
	}
	t := [3]domain.CatalogItem{it.tops[it.i], it.bottoms[it.j], it.shoes[it.k]}

	it.k++
	if it.k == len(it.shoes) {
		it.k = 0
		it.j++
		if it.j == len(it.bottoms) {
			it.j = 0
			it.i++
		}
	}
	return t, true
}

// PassesColorCheck rejects a set of items when any two of their color
// families form a banned pair, regardless of which items carry them.
func (s *Scorer) PassesColorCheck(items ...domain.CatalogItem) bool {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if s.cfg.isClash(items[i].Color(), items[j].Color()) {
				return false
			}
		}
	}
	return true
}

type rankedOutfit struct {
	outfit domain.Outfit
	seq    int
}

// GenerateOutfits enumerates every top/bottom/shoes triple around base,
// drops color clashes, scores the survivors and keeps the best topK. Ties
// keep enumeration order.
func (s *Scorer) GenerateOutfits(
	base domain.CatalogItem,
	catalog []domain.CatalogItem,
	topK int,
	p *domain.CustomerProfile,
	m *domain.StatisticalMatrices,
) OutfitResult {
	if topK <= 0 {
		topK = s.cfg.DefaultOutfitK
	}

	it := newTripleIterator(partitionCatalog(base, catalog))
	var res OutfitResult
	best := make([]rankedOutfit, 0, topK)

	for triple, ok := it.Next(); ok; triple, ok = it.Next() {
		res.Enumerated++
		if !s.PassesColorCheck(triple[:]...) {
			res.Rejected++
			continue
		}
		seq := res.TotalCombinations
		res.TotalCombinations++
		best = insertTopK(best, rankedOutfit{outfit: s.scoreOutfit(triple, p, m), seq: seq}, topK)
	}

	res.Outfits = make([]domain.Outfit, len(best))
	for rank, r := range best {
		r.outfit.OutfitID = fmt.Sprintf("%s-%d", base.SKU, rank+1)
		res.Outfits[rank] = r.outfit
	}
	return res
}

// insertTopK keeps list sorted by score descending then seq ascending, and
// at most k long.
func insertTopK(list []rankedOutfit, r rankedOutfit, k int) []rankedOutfit {
	pos := len(list)
	for pos > 0 && list[pos-1].outfit.Score < r.outfit.Score {
		pos--
	}
	if pos >= k {
		return list
	}
	list = append(list, rankedOutfit{})
	copy(list[pos+1:], list[pos:])
	list[pos] = r
	if len(list) > k {
		list = list[:k]
	}
	return list
}

func (s *Scorer) scoreOutfit(items [3]domain.CatalogItem, p *domain.CustomerProfile, m *domain.StatisticalMatrices) domain.Outfit {
	harmony, co := 0.0, 0.0
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, pr := range pairs {
		a, b := items[pr[0]], items[pr[1]]
		harmony += s.ColorCompatibility(a.ColorFamily, b.ColorFamily, m)
		co += s.CoOccurrence(a.SKU, b.SKU, m)
	}
	harmony /= float64(len(pairs))
	co /= float64(len(pairs))

	consistency, shared := s.styleConsistency(items)
	personal := s.personalization(items, p)

	w := s.cfg.OutfitWeights
	score := w.ColorHarmony*harmony +
		w.StyleConsistency*consistency +
		w.Personalization*personal +
		w.CoOccurrence*co

	breakdown := domain.OutfitBreakdown{
		ColorHarmony:     round3(harmony),
		StyleConsistency: round3(consistency),
		CategoryBalance:  1.0,
		Personalization:  round3(personal),
		CoOccurrence:     round3(co),
	}

	total := 0.0
	for _, item := range items {
		total += item.Price
	}

	return domain.Outfit{
		Items: domain.OutfitItems{
			Top:    items[0],
			Bottom: items[1],
			Shoes:  items[2],
		},
		TotalPrice:     math.Round(total*100) / 100,
		Score:          round3(score),
		ScoreBreakdown: breakdown,
		Explanations:   s.explainOutfit(items, breakdown, p, shared),
	}
}

// styleConsistency is the share of distinct tags carried by more than one
// item, offset and capped at one. It also returns those shared tags in
// first-seen order.
func (s *Scorer) styleConsistency(items [3]domain.CatalogItem) (float64, []string) {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		for tag := range tagSet(item.StyleTags) {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return clamp01(s.cfg.StyleConsistencyOffset), nil
	}

	var shared []string
	for _, item := range items {
		for _, tag := range item.StyleTags {
			tag = normalize(tag)
			if counts[tag] > 1 && !contains(shared, tag) {
				shared = append(shared, tag)
			}
		}
	}
	ratio := float64(len(shared)) / float64(len(order))
	return clamp01(ratio + s.cfg.StyleConsistencyOffset), shared
}

// personalization averages, per item, the profile's interest in the item's
// color and style tags.
func (s *Scorer) personalization(items [3]domain.CatalogItem, p *domain.CustomerProfile) float64 {
	if p == nil {
		return s.cfg.DefaultPersonalization
	}
	total := 0.0
	for _, item := range items {
		cf, _ := lookupFold(p.PreferredColors, item.Color())
		itemScore := clamp01(cf / 5.0)
		for tag := range tagSet(item.StyleTags) {
			sf, _ := lookupFold(p.PreferredStyles, tag)
			itemScore += clamp01(sf / 10.0)
		}
		total += clamp01(itemScore)
	}
	return total / float64(len(items))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
