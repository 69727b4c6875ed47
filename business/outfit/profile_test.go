//go:build !integration

package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"49.99", 49.99, true},
		{"$49.99", 49.99, true},
		{"49,99 CAD", 49.99, true},
		{"1,299.00", 1299, true},
		{"€ 12", 12, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDeriveSessionProfile(t *testing.T) {
	items := []domain.ScanEvent{
		{SKU: "A", Color: "Blue", Price: "$40", Brand: "Acme", StyleTags: []string{"Casual"}},
		{SKU: "B", Color: "blue", Price: "60"},
		{SKU: "C", Color: "", Price: "n/a"},
	}

	p := DeriveSessionProfile(items)

	require.NotNil(t, p)
	assert.True(t, p.Derived)
	assert.Equal(t, map[string]float64{"blue": 2}, p.PreferredColors)
	assert.Equal(t, map[string]float64{"Acme": 1}, p.BrandAffinity)
	assert.Equal(t, map[string]float64{"casual": 1}, p.PreferredStyles)
	assert.InDelta(t, 50, p.AvgPriceSpent, 1e-9)
	assert.InDelta(t, 10, p.PriceStdDev, 1e-9)
}

func TestDeriveSessionProfile_NoOptionalData(t *testing.T) {
	p := DeriveSessionProfile([]domain.ScanEvent{{SKU: "A", Color: "black"}})

	assert.NotNil(t, p.BrandAffinity)
	assert.Empty(t, p.BrandAffinity)
	assert.Empty(t, p.PreferredStyles)
	assert.Equal(t, 50.0, p.AvgPriceSpent)
	assert.Equal(t, 30.0, p.PriceStdDev)
}

func TestDeriveSessionProfile_SinglePrice(t *testing.T) {
	p := DeriveSessionProfile([]domain.ScanEvent{{SKU: "A", Price: "80"}})

	assert.Equal(t, 80.0, p.AvgPriceSpent)
	assert.Equal(t, 0.0, p.PriceStdDev, "computed values are not floored here")
}

func TestResolveProfile(t *testing.T) {
	static := &domain.CustomerProfile{CustomerID: "c1", AvgPriceSpent: 90, PriceStdDev: 20, Derived: true}
	session := []domain.ScanEvent{{SKU: "A", Color: "red", Price: "10"}}

	got := ResolveProfile(static, session)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.CustomerID)
	assert.False(t, got.Derived)
	assert.NotSame(t, static, got)

	got = ResolveProfile(nil, session)
	require.NotNil(t, got)
	assert.True(t, got.Derived)
	assert.Equal(t, 10.0, got.AvgPriceSpent)

	assert.Nil(t, ResolveProfile(nil, nil))
}
