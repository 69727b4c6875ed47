package outfit

import (
	"fmt"
	"strings"

	"vestiaKiosk/domain"
)

const (
	explainTransitionCoOccurrence = 0.3
	explainTransitionProbability  = 0.5
	explainColorCompatibility     = 0.75
	explainStyleOverlap           = 0.6
	explainBrandAffinity          = 0.6
	explainPriceCloseness         = 0.7

	explainOutfitHarmony         = 0.75
	explainOutfitStyle           = 0.6
	explainOutfitPersonalization = 0.6
)

const (
	fallbackPairExplanation   = "A versatile piece that complements your selection."
	fallbackOutfitExplanation = "A balanced top, bottom and shoes combination."
)

// CategoryTransition is the boosted probability that a shopper moves from
// one category to the other, with the population default when unobserved.
func (s *Scorer) CategoryTransition(from, to string, m *domain.StatisticalMatrices) float64 {
	p, ok := transitionProbability(m, from, to)
	if !ok {
		p = s.cfg.DefaultTransition
	}
	return clamp01(p * s.cfg.transitionBoost(normalize(from), normalize(to)))
}

// Explain turns a pair's components into sentences. Rules run in a fixed
// order and each adds at most one sentence.
func (s *Scorer) Explain(base, cand domain.CatalogItem, c domain.ScoreComponents, p *domain.CustomerProfile, m *domain.StatisticalMatrices) []string {
	var out []string

	if n := itemPairSessions(m, base.SKU, cand.SKU); n > 0 {
		out = append(out, fmt.Sprintf("Seen together in %d %s (%s co-occurrence).",
			n, plural(n, "session", "sessions"), percent(c.CoOccurrence)))
	}

	if c.CoOccurrence > explainTransitionCoOccurrence {
		if t := s.CategoryTransition(base.Category, cand.Category, m); t > explainTransitionProbability {
			out = append(out, fmt.Sprintf("Shoppers trying a %s pick a %s next %s of the time.",
				normalize(base.Category), normalize(cand.Category), percent(t)))
		}
	}

	switch {
	case c.ColorCompatibility >= explainColorCompatibility:
		out = append(out, fmt.Sprintf("%s and %s are a highly compatible color pairing.",
			capitalize(base.Color()), cand.Color()))
	case c.ColorPatternSupport > c.ColorCompatibility:
		out = append(out, fmt.Sprintf("Customers often pair %s with %s.",
			base.Color(), cand.Color()))
	}

	if c.StyleOverlap >= explainStyleOverlap {
		_, shared := jaccard(tagSet(base.StyleTags), tagSet(cand.StyleTags), cand.StyleTags)
		if len(shared) > 0 {
			out = append(out, fmt.Sprintf("Shares the %s style.", strings.Join(shared, ", ")))
		}
	}

	if c.BrandAffinity >= explainBrandAffinity && p != nil {
		out = append(out, fmt.Sprintf("Matches your preference for %s.", cand.Brand))
	}

	if c.PriceCloseness >= explainPriceCloseness {
		out = append(out, "Priced in line with what you usually spend.")
	}

	if p != nil {
		if freq, ok := lookupFold(p.PreferredColors, cand.Color()); ok && freq > 0 {
			out = append(out, fmt.Sprintf("You have shown interest in %s pieces.", cand.Color()))
		}
	}

	if len(out) == 0 {
		out = append(out, fallbackPairExplanation)
	}
	return out
}

// explainOutfit describes an outfit from its holistic breakdown.
func (s *Scorer) explainOutfit(items [3]domain.CatalogItem, b domain.OutfitBreakdown, p *domain.CustomerProfile, shared []string) []string {
	var out []string

	if b.ColorHarmony >= explainOutfitHarmony {
		out = append(out, fmt.Sprintf("%s, %s and %s work well together.",
			capitalize(items[0].Color()), items[1].Color(), items[2].Color()))
	}
	if b.StyleConsistency >= explainOutfitStyle {
		if len(shared) > 0 {
			out = append(out, fmt.Sprintf("Consistent %s style across the outfit.", strings.Join(shared, ", ")))
		} else {
			out = append(out, "Consistent styling across the outfit.")
		}
	}
	if p != nil && b.Personalization >= explainOutfitPersonalization {
		out = append(out, "Tailored to your color and style preferences.")
	}
	if b.CoOccurrence > s.cfg.DefaultCoOccurrence {
		out = append(out, "Shoppers often try these pieces on together.")
	}

	if len(out) == 0 {
		out = append(out, fallbackOutfitExplanation)
	}
	return out
}

func percent(x float64) string {
	return fmt.Sprintf("%.0f%%", x*100)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
