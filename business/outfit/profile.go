package outfit

import (
	"math"
	"strconv"
	"strings"

	"vestiaKiosk/domain"
)

// ResolveProfile picks the profile used to personalize scoring. A registered
// customer's static profile wins; otherwise one is derived from the scans of
// the current session. It returns nil when neither is available, which
// callers score with population defaults.
func ResolveProfile(static *domain.CustomerProfile, sessionItems []domain.ScanEvent) *domain.CustomerProfile {
	if static != nil {
		p := *static
		p.Derived = false
		return &p
	}
	if len(sessionItems) == 0 {
		return nil
	}
	return DeriveSessionProfile(sessionItems)
}

// DeriveSessionProfile builds a profile from one session's scans: color,
// brand and style frequencies plus the mean and population standard
// deviation of the parseable prices.
func DeriveSessionProfile(items []domain.ScanEvent) *domain.CustomerProfile {
	p := &domain.CustomerProfile{
		PreferredColors: make(map[string]float64),
		BrandAffinity:   make(map[string]float64),
		PreferredStyles: make(map[string]float64),
		Derived:         true,
	}

	var prices []float64
	for _, it := range items {
		if c := normalize(it.Color); c != "" {
			p.PreferredColors[c]++
		}
		if b := strings.TrimSpace(it.Brand); b != "" {
			p.BrandAffinity[b]++
		}
		for _, tag := range it.StyleTags {
			if t := normalize(tag); t != "" {
				p.PreferredStyles[t]++
			}
		}
		if price, ok := ParsePrice(string(it.Price)); ok {
			prices = append(prices, price)
		}
	}

	p.AvgPriceSpent, p.PriceStdDev = priceStats(prices)
	return p
}

// priceStats returns the mean and population standard deviation. With no
// data points it returns the population defaults.
func priceStats(prices []float64) (float64, float64) {
	if len(prices) == 0 {
		return defaultAvgPrice, defaultPriceStdDev
	}
	mean := 0.0
	for _, v := range prices {
		mean += v
	}
	mean /= float64(len(prices))

	variance := 0.0
	for _, v := range prices {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(prices))
	return mean, math.Sqrt(variance)
}

// ParsePrice reads a scanned price that may be a plain number or a currency
// string ("$49.99", "49,99 CAD", "1,299.00"). A comma is a decimal separator
// only when the string has no dot. Non-positive and unparseable values
// report false.
func ParsePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.Replace(s, ",", ".", 1)
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
