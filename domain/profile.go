package domain

// CustomerProfile aggregates preference frequencies and price statistics.
// Registered customers have a static profile; anonymous shoppers get one
// derived from their own session scans.
type CustomerProfile struct {
	CustomerID      string             `json:"customerId,omitempty" yaml:"customerId"`
	PreferredColors map[string]float64 `json:"preferredColors" yaml:"preferredColors"`
	BrandAffinity   map[string]float64 `json:"brandAffinity" yaml:"brandAffinity"`
	PreferredStyles map[string]float64 `json:"preferredStyles" yaml:"preferredStyles"`
	AvgPriceSpent   float64            `json:"avgPriceSpent" yaml:"avgPriceSpent"`
	PriceStdDev     float64            `json:"priceStdDev" yaml:"priceStdDev"`
	Derived         bool               `json:"derived" yaml:"-"`
}

// StatisticalMatrices holds co-occurrence probabilities derived from the
// session log, plus the raw counts behind them.
type StatisticalMatrices struct {
	CategoryTransitions map[string]float64 `json:"categoryTransitions"`
	ColorPairs          map[string]float64 `json:"colorPairs"`
	ItemPairs           map[string]float64 `json:"itemPairs"`

	CategoryTransitionCounts map[string]int `json:"categoryTransitionCounts"`
	ColorPairCounts          map[string]int `json:"colorPairCounts"`
	ItemPairCounts           map[string]int `json:"itemPairCounts"`
	// distinct sessions per item pair, for "seen together" evidence
	ItemPairSessions map[string]int `json:"itemPairSessions"`

	SessionCount int `json:"sessionCount"`
}

// StatsSummary is the size of each table, reported alongside recommendations.
type StatsSummary struct {
	TotalSessions       int `json:"totalSessions"`
	CategoryTransitions int `json:"categoryTransitions"`
	ColorPairs          int `json:"colorPairs"`
	ItemPairs           int `json:"itemPairs"`
}

func (m *StatisticalMatrices) Summary() StatsSummary {
	if m == nil {
		return StatsSummary{}
	}
	return StatsSummary{
		TotalSessions:       m.SessionCount,
		CategoryTransitions: len(m.CategoryTransitions),
		ColorPairs:          len(m.ColorPairs),
		ItemPairs:           len(m.ItemPairs),
	}
}
