// business/outfit/scoring.go
package outfit

import (
	"math"

	"vestiaKiosk/domain"
)

// Scorer computes pairwise compatibility between a base item and a
// candidate. It holds only read-only configuration and is safe for
// concurrent use.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	cfg.buildIndexes()
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Config() Config {
	return s.cfg
}

// ColorCompatibility blends the rule table with the observed color-pair
// share. An unobserved pair falls back to the rule value, so with no
// statistics the result is the pure rule score.
func (s *Scorer) ColorCompatibility(a, b string, m *domain.StatisticalMatrices) float64 {
	a, b = normalize(a), normalize(b)
	rule := s.cfg.ruleColorScore(a, b)
	stat, ok := colorPairShare(m, a, b)
	if !ok {
		stat = rule
	}
	return clamp01(s.cfg.RuleBlend*rule + (1-s.cfg.RuleBlend)*stat)
}

func (s *Scorer) ColorPatternSupport(a, b string, m *domain.StatisticalMatrices) float64 {
	if stat, ok := colorPairShare(m, a, b); ok {
		return clamp01(stat)
	}
	return s.cfg.DefaultColorPattern
}

// BrandAffinity is the candidate brand's share of the profile's brand
// observations, scaled and clamped.
func (s *Scorer) BrandAffinity(brand string, p *domain.CustomerProfile) float64 {
	if p == nil {
		return s.cfg.DefaultBrandAffinity
	}
	total := sumValues(p.BrandAffinity)
	if total <= 0 {
		return s.cfg.DefaultBrandAffinity
	}
	freq, _ := lookupFold(p.BrandAffinity, brand)
	return clamp01(freq / total * s.cfg.BrandScale)
}

// PriceCloseness is a Gaussian kernel around the profile's average spend.
func (s *Scorer) PriceCloseness(price float64, p *domain.CustomerProfile) float64 {
	avg, std := s.cfg.DefaultAvgPrice, s.cfg.DefaultPriceStdDev
	if p != nil {
		avg, std = p.AvgPriceSpent, p.PriceStdDev
	}
	std = math.Max(std, s.cfg.MinPriceStdDev)
	z := math.Abs(price-avg) / std
	return clamp01(gaussian(z))
}

// StyleOverlap is the Jaccard similarity of the two tag sets plus a boost
// for each candidate tag the profile has shown interest in.
func (s *Scorer) StyleOverlap(baseTags, candTags []string, p *domain.CustomerProfile) float64 {
	baseSet, candSet := tagSet(baseTags), tagSet(candTags)

	score := s.cfg.EmptyStyleBase
	if len(baseSet) > 0 || len(candSet) > 0 {
		score, _ = jaccard(baseSet, candSet, nil)
	}

	if p != nil {
		total := sumValues(p.PreferredStyles)
		if total > 0 {
			for tag := range candSet {
				freq, _ := lookupFold(p.PreferredStyles, tag)
				score += freq / total * s.cfg.StylePreferenceBoost
			}
		}
	}
	return clamp01(score)
}

func (s *Scorer) CoOccurrence(skuA, skuB string, m *domain.StatisticalMatrices) float64 {
	if share, ok := itemPairShare(m, skuA, skuB); ok {
		return clamp01(share)
	}
	return s.cfg.DefaultCoOccurrence
}

// Score computes every component for the pair and their weighted sum,
// rounded to three decimals. Components are returned unrounded.
func (s *Scorer) Score(base, cand domain.CatalogItem, p *domain.CustomerProfile, m *domain.StatisticalMatrices) domain.ScoreComponents {
	c := domain.ScoreComponents{
		ColorCompatibility:  s.ColorCompatibility(base.ColorFamily, cand.ColorFamily, m),
		ColorPatternSupport: s.ColorPatternSupport(base.ColorFamily, cand.ColorFamily, m),
		BrandAffinity:       s.BrandAffinity(cand.Brand, p),
		PriceCloseness:      s.PriceCloseness(cand.Price, p),
		StyleOverlap:        s.StyleOverlap(base.StyleTags, cand.StyleTags, p),
		CoOccurrence:        s.CoOccurrence(base.SKU, cand.SKU, m),
	}
	c.Score = round3(s.weighted(c))
	return c
}

func (s *Scorer) weighted(c domain.ScoreComponents) float64 {
	w := s.cfg.PairWeights
	return w.Color*c.ColorCompatibility +
		w.ColorPattern*c.ColorPatternSupport +
		w.Brand*c.BrandAffinity +
		w.Price*c.PriceCloseness +
		w.Style*c.StyleOverlap +
		w.CoOccurrence*c.CoOccurrence
}

func roundComponents(c domain.ScoreComponents) domain.ScoreComponents {
	return domain.ScoreComponents{
		ColorCompatibility:  round3(c.ColorCompatibility),
		ColorPatternSupport: round3(c.ColorPatternSupport),
		BrandAffinity:       round3(c.BrandAffinity),
		PriceCloseness:      round3(c.PriceCloseness),
		StyleOverlap:        round3(c.StyleOverlap),
		CoOccurrence:        round3(c.CoOccurrence),
		Score:               c.Score,
	}
}
