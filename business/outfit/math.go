// business/outfit/math.go
package outfit

import (
	"math"
	"strings"
)

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// exp(-0.5 * z^2)
func gaussian(z float64) float64 {
	return math.Exp(-0.5 * z * z)
}

// pairKey joins two values in sorted order so (a, b) and (b, a) share a key.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func transitionKey(from, to string) string {
	return from + "->" + to
}

func splitTransitionKey(key string) (string, string) {
	from, to, _ := strings.Cut(key, "->")
	return from, to
}

// tagSet lower-cases tags and drops blanks.
func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = normalize(t)
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// jaccard returns |a ∩ b| / |a ∪ b| and the shared tags, listed in the
// sequence given by order.
func jaccard(a, b map[string]struct{}, order []string) (float64, []string) {
	if len(a) == 0 && len(b) == 0 {
		return 0, nil
	}
	var shared []string
	seen := make(map[string]struct{})
	for _, t := range order {
		t = normalize(t)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		_, inA := a[t]
		_, inB := b[t]
		if inA && inB {
			shared = append(shared, t)
		}
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union), shared
}

func sumValues(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

// lookupFold finds key in m ignoring case.
func lookupFold(m map[string]float64, key string) (float64, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return 0, false
}
