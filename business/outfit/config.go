package outfit

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PairWeights weights the six pairwise score components.
type PairWeights struct {
	Color        float64 `yaml:"color"`
	ColorPattern float64 `yaml:"colorPattern"`
	Brand        float64 `yaml:"brand"`
	Price        float64 `yaml:"price"`
	Style        float64 `yaml:"style"`
	CoOccurrence float64 `yaml:"coOccurrence"`
}

func (w PairWeights) Sum() float64 {
	return w.Color + w.ColorPattern + w.Brand + w.Price + w.Style + w.CoOccurrence
}

// OutfitWeights weights the holistic outfit components. Category balance is
// constant and carries no weight.
type OutfitWeights struct {
	ColorHarmony     float64 `yaml:"colorHarmony"`
	StyleConsistency float64 `yaml:"styleConsistency"`
	Personalization  float64 `yaml:"personalization"`
	CoOccurrence     float64 `yaml:"coOccurrence"`
}

func (w OutfitWeights) Sum() float64 {
	return w.ColorHarmony + w.StyleConsistency + w.Personalization + w.CoOccurrence
}

// ColorPair is an unordered pair of color families.
type ColorPair struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type ColorRule struct {
	ColorPair `yaml:",inline"`
	Score     float64 `yaml:"score"`
}

// TransitionBoost multiplies the category transition probability used by
// explanations for a source->target category pair.
type TransitionBoost struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	Multiplier float64 `yaml:"multiplier"`
}

type Config struct {
	PairWeights   PairWeights   `yaml:"pairWeights"`
	OutfitWeights OutfitWeights `yaml:"outfitWeights"`

	ColorRules        []ColorRule       `yaml:"colorRules"`
	ClashList         []ColorPair       `yaml:"clashList"`
	TransitionBoosts  []TransitionBoost `yaml:"transitionBoosts"`
	RuleBlend         float64           `yaml:"ruleBlend"`
	DefaultColorScore float64           `yaml:"defaultColorScore"`

	DefaultColorPattern    float64 `yaml:"defaultColorPattern"`
	DefaultBrandAffinity   float64 `yaml:"defaultBrandAffinity"`
	BrandScale             float64 `yaml:"brandScale"`
	DefaultAvgPrice        float64 `yaml:"defaultAvgPrice"`
	DefaultPriceStdDev     float64 `yaml:"defaultPriceStdDev"`
	MinPriceStdDev         float64 `yaml:"minPriceStdDev"`
	EmptyStyleBase         float64 `yaml:"emptyStyleBase"`
	StylePreferenceBoost   float64 `yaml:"stylePreferenceBoost"`
	DefaultCoOccurrence    float64 `yaml:"defaultCoOccurrence"`
	DefaultTransition      float64 `yaml:"defaultTransition"`
	DefaultPersonalization float64 `yaml:"defaultPersonalization"`
	StyleConsistencyOffset float64 `yaml:"styleConsistencyOffset"`

	DefaultRecommendK int `yaml:"defaultRecommendK"`
	DefaultOutfitK    int `yaml:"defaultOutfitK"`

	colorIndex map[string]float64
	boostIndex map[string]float64
	clashIndex map[string]struct{}
}

const (
	defaultRuleBlend              = 0.7
	defaultColorScore             = 0.6
	defaultColorPattern           = 0.5
	defaultBrandAffinity          = 0.5
	defaultBrandScale             = 2.5
	defaultAvgPrice               = 50.0
	defaultPriceStdDev            = 30.0
	defaultMinPriceStdDev         = 10.0
	defaultEmptyStyleBase         = 0.3
	defaultStylePreferenceBoost   = 0.3
	defaultCoOccurrence           = 0.35
	defaultTransition             = 0.4
	defaultPersonalization        = 0.5
	defaultStyleConsistencyOffset = 0.3
	defaultRecommendK             = 3
	defaultOutfitK                = 5

	weightEpsilon = 1e-6
)

func defaultColorRules() []ColorRule {
	rule := func(a, b string, s float64) ColorRule {
		return ColorRule{ColorPair: ColorPair{A: a, B: b}, Score: s}
	}
	return []ColorRule{
		rule("blue", "neutral", 0.95),
		rule("black", "white", 0.95),
		rule("black", "neutral", 0.90),
		rule("white", "blue", 0.90),
		rule("black", "blue", 0.85),
		rule("black", "grey", 0.85),
		rule("black", "red", 0.85),
		rule("white", "neutral", 0.85),
		rule("white", "grey", 0.85),
		rule("neutral", "neutral", 0.85),
		rule("neutral", "grey", 0.85),
		rule("neutral", "brown", 0.85),
		rule("brown", "beige", 0.85),
		rule("blue", "beige", 0.85),
		rule("black", "black", 0.80),
		rule("black", "beige", 0.80),
		rule("white", "red", 0.80),
		rule("white", "brown", 0.80),
		rule("blue", "grey", 0.80),
		rule("neutral", "beige", 0.80),
		rule("white", "white", 0.75),
		rule("blue", "brown", 0.75),
		rule("green", "brown", 0.75),
		rule("green", "beige", 0.75),
		rule("blue", "blue", 0.70),
		rule("grey", "grey", 0.70),
		rule("blue", "orange", 0.35),
		rule("red", "orange", 0.30),
		rule("purple", "yellow", 0.30),
		rule("red", "green", 0.20),
	}
}

func defaultClashList() []ColorPair {
	return []ColorPair{
		{A: "red", B: "green"},
		{A: "red", B: "orange"},
		{A: "blue", B: "orange"},
		{A: "purple", B: "yellow"},
	}
}

func defaultTransitionBoosts() []TransitionBoost {
	return []TransitionBoost{
		{From: "top", To: "bottom", Multiplier: 1.15},
		{From: "bottom", To: "shoes", Multiplier: 1.15},
		{From: "top", To: "shoes", Multiplier: 1.1},
		{From: "top", To: "outerwear", Multiplier: 1.1},
	}
}

func DefaultConfig() Config {
	cfg := Config{
		PairWeights: PairWeights{
			Color:        0.25,
			ColorPattern: 0.15,
			Brand:        0.20,
			Price:        0.20,
			Style:        0.12,
			CoOccurrence: 0.08,
		},
		OutfitWeights: OutfitWeights{
			ColorHarmony:     0.3,
			StyleConsistency: 0.25,
			Personalization:  0.25,
			CoOccurrence:     0.2,
		},
		ColorRules:       defaultColorRules(),
		ClashList:        defaultClashList(),
		TransitionBoosts: defaultTransitionBoosts(),

		RuleBlend:              defaultRuleBlend,
		DefaultColorScore:      defaultColorScore,
		DefaultColorPattern:    defaultColorPattern,
		DefaultBrandAffinity:   defaultBrandAffinity,
		BrandScale:             defaultBrandScale,
		DefaultAvgPrice:        defaultAvgPrice,
		DefaultPriceStdDev:     defaultPriceStdDev,
		MinPriceStdDev:         defaultMinPriceStdDev,
		EmptyStyleBase:         defaultEmptyStyleBase,
		StylePreferenceBoost:   defaultStylePreferenceBoost,
		DefaultCoOccurrence:    defaultCoOccurrence,
		DefaultTransition:      defaultTransition,
		DefaultPersonalization: defaultPersonalization,
		StyleConsistencyOffset: defaultStyleConsistencyOffset,
		DefaultRecommendK:      defaultRecommendK,
		DefaultOutfitK:         defaultOutfitK,
	}
	cfg.buildIndexes()
	return cfg
}

// LoadConfigFile overlays a YAML file on top of DefaultConfig. Fields absent
// from the file keep their defaults; present tables replace the default table.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scoring config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scoring config: %w", err)
	}
	cfg.buildIndexes()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that both weight sets sum to one and every table value
// lies in [0, 1].
func (c *Config) Validate() error {
	if s := c.PairWeights.Sum(); math.Abs(s-1.0) > weightEpsilon {
		return fmt.Errorf("pairWeights must sum to 1, got %.6f", s)
	}
	if s := c.OutfitWeights.Sum(); math.Abs(s-1.0) > weightEpsilon {
		return fmt.Errorf("outfitWeights must sum to 1, got %.6f", s)
	}
	for _, r := range c.ColorRules {
		if r.A == "" || r.B == "" {
			return fmt.Errorf("colorRules entry has an empty color")
		}
		if r.Score < 0 || r.Score > 1 {
			return fmt.Errorf("colorRules %s/%s score must be in [0, 1], got %f", r.A, r.B, r.Score)
		}
	}
	for _, p := range c.ClashList {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("clashList entry has an empty color")
		}
	}
	for _, b := range c.TransitionBoosts {
		if b.Multiplier < 0 {
			return fmt.Errorf("transitionBoosts %s->%s multiplier must be non-negative", b.From, b.To)
		}
	}
	if c.RuleBlend < 0 || c.RuleBlend > 1 {
		return fmt.Errorf("ruleBlend must be in [0, 1], got %f", c.RuleBlend)
	}

	unit := map[string]float64{
		"defaultColorScore":      c.DefaultColorScore,
		"defaultColorPattern":    c.DefaultColorPattern,
		"defaultBrandAffinity":   c.DefaultBrandAffinity,
		"emptyStyleBase":         c.EmptyStyleBase,
		"stylePreferenceBoost":   c.StylePreferenceBoost,
		"defaultCoOccurrence":    c.DefaultCoOccurrence,
		"defaultTransition":      c.DefaultTransition,
		"defaultPersonalization": c.DefaultPersonalization,
		"styleConsistencyOffset": c.StyleConsistencyOffset,
	}
	names := make([]string, 0, len(unit))
	for name := range unit {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := unit[name]; v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", name, v)
		}
	}

	if c.MinPriceStdDev <= 0 {
		return fmt.Errorf("minPriceStdDev must be positive, got %f", c.MinPriceStdDev)
	}
	if c.DefaultPriceStdDev <= 0 {
		return fmt.Errorf("defaultPriceStdDev must be positive, got %f", c.DefaultPriceStdDev)
	}
	if c.DefaultRecommendK < 1 || c.DefaultOutfitK < 1 {
		return fmt.Errorf("default top-k values must be positive")
	}
	return nil
}

func (c *Config) buildIndexes() {
	c.colorIndex = make(map[string]float64, len(c.ColorRules))
	for _, r := range c.ColorRules {
		c.colorIndex[pairKey(normalize(r.A), normalize(r.B))] = r.Score
	}
	c.boostIndex = make(map[string]float64, len(c.TransitionBoosts))
	for _, b := range c.TransitionBoosts {
		c.boostIndex[transitionKey(normalize(b.From), normalize(b.To))] = b.Multiplier
	}
	c.clashIndex = make(map[string]struct{}, len(c.ClashList))
	for _, p := range c.ClashList {
		c.clashIndex[pairKey(normalize(p.A), normalize(p.B))] = struct{}{}
	}
}

// ruleColorScore looks up the fixed affinity table for two color families.
func (c *Config) ruleColorScore(a, b string) float64 {
	if c.colorIndex == nil {
		c.buildIndexes()
	}
	if s, ok := c.colorIndex[pairKey(a, b)]; ok {
		return s
	}
	return c.DefaultColorScore
}

func (c *Config) transitionBoost(from, to string) float64 {
	if c.boostIndex == nil {
		c.buildIndexes()
	}
	if m, ok := c.boostIndex[transitionKey(from, to)]; ok {
		return m
	}
	return 1.0
}

// isClash reports whether two color families form a banned pair.
func (c *Config) isClash(a, b string) bool {
	if c.clashIndex == nil {
		c.buildIndexes()
	}
	_, ok := c.clashIndex[pairKey(a, b)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
