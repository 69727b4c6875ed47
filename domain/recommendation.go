package domain

// ScoreComponents is the per-pair breakdown behind a compatibility score.
type ScoreComponents struct {
	ColorCompatibility  float64 `json:"colorCompatibility"`
	ColorPatternSupport float64 `json:"colorPatternSupport"`
	BrandAffinity       float64 `json:"brandAffinity"`
	PriceCloseness      float64 `json:"priceCloseness"`
	StyleOverlap        float64 `json:"styleOverlap"`
	CoOccurrence        float64 `json:"coOccurrence"`
	Score               float64 `json:"score"`
}

// OutfitBreakdown is the holistic breakdown behind an outfit score.
type OutfitBreakdown struct {
	ColorHarmony     float64 `json:"colorHarmony"`
	StyleConsistency float64 `json:"styleConsistency"`
	CategoryBalance  float64 `json:"categoryBalance"`
	Personalization  float64 `json:"personalization"`
	CoOccurrence     float64 `json:"coOccurrence"`
}

type OutfitItems struct {
	Top    CatalogItem `json:"top"`
	Bottom CatalogItem `json:"bottom"`
	Shoes  CatalogItem `json:"shoes"`
}

type Outfit struct {
	OutfitID       string          `json:"outfitId"`
	Items          OutfitItems     `json:"items"`
	TotalPrice     float64         `json:"totalPrice"`
	Score          float64         `json:"score"`
	ScoreBreakdown OutfitBreakdown `json:"scoreBreakdown"`
	Explanations   []string        `json:"explanations"`
}

// RecommendRequest asks for the best candidates per target category.
type RecommendRequest struct {
	BaseSKU          string   `json:"baseSku" validate:"required"`
	StoreID          string   `json:"storeId"`
	CustomerID       string   `json:"customerId"`
	SessionID        string   `json:"sessionId"`
	TargetCategories []string `json:"targetCategories"`
	TopK             int      `json:"topK" validate:"gte=0,lte=50"`
}

type RecommendedItem struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Price          float64         `json:"price"`
	Color          string          `json:"color"`
	StyleTags      []string        `json:"styleTags"`
	Score          float64         `json:"score"`
	ScoreBreakdown ScoreComponents `json:"scoreBreakdown"`
	Explanations   []string        `json:"explanations"`
}

type RecommendResponse struct {
	BaseItem             CatalogItem                  `json:"baseItem"`
	Recommendations      map[string][]RecommendedItem `json:"recommendations"`
	CustomerPersonalized bool                         `json:"customerPersonalized"`
	StatsSummary         StatsSummary                 `json:"statsSummary"`
}

// MixMatchRequest asks for complete top/bottom/shoes outfits around a base item.
type MixMatchRequest struct {
	BaseSKU    string `json:"baseSku" validate:"required"`
	StoreID    string `json:"storeId"`
	CustomerID string `json:"customerId"`
	SessionID  string `json:"sessionId"`
	TopK       int    `json:"topK" validate:"gte=0,lte=50"`
}

type MixMatchResponse struct {
	BaseItem             CatalogItem `json:"baseItem"`
	TotalCombinations    int         `json:"totalCombinations"`
	Outfits              []Outfit    `json:"outfits"`
	CustomerPersonalized bool        `json:"customerPersonalized"`
}
