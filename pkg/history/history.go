// Package history generates the synthetic baseline macro series that the
// projection engine runs against. All historical data is illustrative; no
// real series are ever fetched.
package history

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bhum/policy-pulse/pkg/constants"
)

// Point is one year of baseline history. GDP is in billions, inflation in
// percent.
type Point struct {
	Year      int     `json:"year"`
	GDP       float64 `json:"gdp"`
	Inflation float64 `json:"inflation"`
}

// Series is an ordered baseline history, one point per year with strictly
// increasing contiguous years.
type Series []Point

// GDPValues returns the GDP column of the series.
func (s Series) GDPValues() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.GDP
	}
	return values
}

// LatestYear returns the final year of the series; the series must be
// non-empty.
func (s Series) LatestYear() int {
	return s[len(s)-1].Year
}

// Validate checks the series invariants: non-empty, strictly increasing
// contiguous years, positive GDP.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("historical series is empty")
	}
	for i, p := range s {
		if p.GDP <= 0 {
			return fmt.Errorf("historical GDP for year %d must be positive, got %v", p.Year, p.GDP)
		}
		if i > 0 && p.Year != s[i-1].Year+1 {
			return fmt.Errorf("historical years must be contiguous: %d follows %d", p.Year, s[i-1].Year)
		}
	}
	return nil
}

// GeneratorConfig holds the tunable parameters of the synthetic history
// generator. The zero value is not useful; use DefaultGeneratorConfig.
type GeneratorConfig struct {
	StartYear       int
	EndYear         int
	BaseGDP         float64
	GDPStep         float64
	GDPNoise        int
	InflationCenter float64
	InflationSpread float64
}

// DefaultGeneratorConfig returns the generator parameters used by every
// dashboard iteration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		StartYear:       constants.DefaultStartYear,
		EndYear:         constants.DefaultEndYear,
		BaseGDP:         constants.DefaultBaseGDP,
		GDPStep:         constants.DefaultGDPStep,
		GDPNoise:        constants.DefaultGDPNoise,
		InflationCenter: constants.DefaultInflationCenter,
		InflationSpread: constants.DefaultInflationSpread,
	}
}

// Generate produces one point per year in [StartYear, EndYear]. A non-nil
// seed makes the series exactly reproducible; a nil seed draws fresh
// randomness on every call. A non-positive GDPNoise disables the jitter.
func Generate(cfg GeneratorConfig, seed *int64) Series {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := cfg.EndYear - cfg.StartYear + 1
	if n <= 0 {
		return Series{}
	}

	series := make(Series, n)
	for i := 0; i < n; i++ {
		noise := 0
		if cfg.GDPNoise > 0 {
			noise = rng.Intn(2*cfg.GDPNoise+1) - cfg.GDPNoise
		}
		series[i] = Point{
			Year:      cfg.StartYear + i,
			GDP:       cfg.BaseGDP + float64(i)*cfg.GDPStep + float64(noise),
			Inflation: cfg.InflationCenter + (rng.Float64()*2-1)*cfg.InflationSpread,
		}
	}
	return series
}
