//go:build !integration

package outfit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.PairWeights.Sum(), 1e-9)
	assert.InDelta(t, 1.0, cfg.OutfitWeights.Sum(), 1e-9)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"pair weights off", func(c *Config) { c.PairWeights.Color = 0.5 }, "pairWeights"},
		{"outfit weights off", func(c *Config) { c.OutfitWeights.CoOccurrence = 0 }, "outfitWeights"},
		{"rule out of range", func(c *Config) { c.ColorRules[0].Score = 1.2 }, "colorRules"},
		{"empty clash color", func(c *Config) { c.ClashList = append(c.ClashList, ColorPair{A: "red"}) }, "clashList"},
		{"default out of range", func(c *Config) { c.DefaultCoOccurrence = -0.1 }, "defaultCoOccurrence"},
		{"std floor", func(c *Config) { c.MinPriceStdDev = 0 }, "minPriceStdDev"},
		{"top-k", func(c *Config) { c.DefaultOutfitK = 0 }, "top-k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaultCoOccurrence: 0.25
colorRules:
  - a: teal
    b: mustard
    score: 0.9
clashList:
  - a: pink
    b: orange
`), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.DefaultCoOccurrence)
	assert.Equal(t, 0.25, cfg.PairWeights.Color, "untouched fields keep defaults")
	assert.Equal(t, 0.9, cfg.ruleColorScore("mustard", "teal"))
	assert.Equal(t, cfg.DefaultColorScore, cfg.ruleColorScore("blue", "neutral"), "table replaced wholesale")
	assert.True(t, cfg.isClash("orange", "pink"))
	assert.False(t, cfg.isClash("red", "green"))
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pairWeights:\n  color: 0.9\n"), 0o600))

	_, err := LoadConfigFile(path)
	require.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
