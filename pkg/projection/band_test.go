package projection

import (
	"math"
	"testing"

	"github.com/bhum/policy-pulse/pkg/mathutil"
)

func TestVolatilityFloorSubstitution(t *testing.T) {
	tests := []struct {
		name string
		gdp  []float64
	}{
		{name: "Empty series", gdp: []float64{}},
		{name: "Single value", gdp: []float64{1000}},
		{name: "Constant series", gdp: []float64{1000, 1000, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if vol := Volatility(tt.gdp); vol != 0.02 {
				t.Errorf("Volatility(%v) = %v, expected floor 0.02", tt.gdp, vol)
			}
		})
	}
}

func TestVolatilityOfVaryingSeries(t *testing.T) {
	vol := Volatility([]float64{1000, 1060, 1090, 1180})
	if vol <= 0 || math.IsNaN(vol) {
		t.Fatalf("volatility should be positive and finite, got %v", vol)
	}
	if vol == 0.02 {
		t.Error("varying series should not hit the floor")
	}
}

func TestShockStrengthWeights(t *testing.T) {
	shock := PolicyShock{RateChange: -2, LiquidityChange: 5, InflationChange: -2}
	expected := 0.6*2 + 0.3*5 + 0.8*2
	if strength := ShockStrength(shock); !mathutil.WithinTolerance(strength, expected, 1e-12) {
		t.Errorf("ShockStrength = %v, expected %v", strength, expected)
	}
}

func TestBandMultiplierCapped(t *testing.T) {
	tests := []struct {
		name     string
		shock    PolicyShock
		expected float64
	}{
		{
			name:     "No shock",
			shock:    PolicyShock{},
			expected: 1.0,
		},
		{
			name:     "Moderate shock",
			shock:    PolicyShock{RateChange: 1.0},
			expected: 1 + 0.6/5,
		},
		{
			name:     "Extreme shock hits the cap",
			shock:    PolicyShock{RateChange: 20, LiquidityChange: 50, InflationChange: 20},
			expected: 1.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := BandMultiplier(tt.shock); !mathutil.WithinTolerance(m, tt.expected, 1e-12) {
				t.Errorf("BandMultiplier = %v, expected %v", m, tt.expected)
			}
		})
	}
}

func TestBandAroundOrdering(t *testing.T) {
	tests := []struct {
		name      string
		projected float64
		band      float64
	}{
		{name: "Normal band", projected: 950, band: 30},
		{name: "Band wider than projection", projected: 10, band: 50},
		{name: "Zero band", projected: 1000, band: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, worst := BandAround(tt.projected, tt.band)
			if worst > tt.projected || tt.projected > best {
				t.Errorf("ordering violated: worst=%v projected=%v best=%v", worst, tt.projected, best)
			}
			if worst < 0 {
				t.Errorf("worst bound went negative: %v", worst)
			}
		})
	}
}
