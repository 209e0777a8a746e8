package projection

import (
	"math"
	"testing"

	"github.com/bhum/policy-pulse/pkg/history"
)

func testSeries() history.Series {
	return history.Series{
		{Year: 2010, GDP: 1000, Inflation: 5.0},
		{Year: 2011, GDP: 1060, Inflation: 4.6},
		{Year: 2012, GDP: 1095, Inflation: 5.3},
		{Year: 2013, GDP: 1170, Inflation: 4.9},
	}
}

func TestProjectZeroShockIsIdentity(t *testing.T) {
	rows, err := Project(testSeries(), DefaultBaselineContext(), PolicyShock{}, DefaultCoefficients())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	for _, row := range rows {
		if row.ProjectedGDP != row.GDP {
			t.Errorf("year %d: projected GDP %v != baseline %v under zero shock",
				row.Year, row.ProjectedGDP, row.GDP)
		}
		if row.ProjectedInflation != row.Inflation {
			t.Errorf("year %d: projected inflation %v != baseline %v under zero shock",
				row.Year, row.ProjectedInflation, row.Inflation)
		}
	}
}

func TestProjectBandInvariant(t *testing.T) {
	shocks := []PolicyShock{
		{},
		{RateChange: 2, LiquidityChange: -5, InflationChange: 2},
		{RateChange: -2, LiquidityChange: 5, InflationChange: -2},
		{RateChange: 0.25, LiquidityChange: 0.5, InflationChange: 0.25},
	}

	for _, shock := range shocks {
		rows, err := Project(testSeries(), DefaultBaselineContext(), shock, DefaultCoefficients())
		if err != nil {
			t.Fatalf("Project failed: %v", err)
		}
		for _, row := range rows {
			if row.GDPWorst > row.ProjectedGDP || row.ProjectedGDP > row.GDPBest {
				t.Errorf("year %d: band ordering violated: %v <= %v <= %v",
					row.Year, row.GDPWorst, row.ProjectedGDP, row.GDPBest)
			}
			if row.GDPWorst < 0 || row.ProjectedGDP < 0 || row.GDPBest < 0 {
				t.Errorf("year %d: GDP-like value went negative", row.Year)
			}
		}
	}
}

func TestProjectPerCapita(t *testing.T) {
	ctx := DefaultBaselineContext()
	ctx.PopulationM = 1400
	ctx.PopulationGrowth = 0.9

	rows, err := Project(testSeries(), ctx, PolicyShock{}, DefaultCoefficients())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	// First year: 1000 billions over 1400 millions = ~0.714k per head.
	expected := 1000.0 / 1400.0 * 1000.0
	if math.Abs(rows[0].GDPPerCapitaK-expected) > 1e-9 {
		t.Errorf("per-capita = %v, expected %v", rows[0].GDPPerCapitaK, expected)
	}

	// Population compounds year over year.
	for i := 1; i < len(rows); i++ {
		if rows[i].PopulationM <= rows[i-1].PopulationM {
			t.Errorf("population path not increasing at year %d", rows[i].Year)
		}
	}
}

func TestProjectZeroPopulationYieldsInf(t *testing.T) {
	// A non-positive population is a caller error; per-capita must surface
	// as +Inf, never be clamped.
	ctx := DefaultBaselineContext()
	ctx.PopulationM = 0

	rows, err := Project(testSeries(), ctx, PolicyShock{}, DefaultCoefficients())
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if !math.IsInf(rows[0].GDPPerCapitaK, 1) {
		t.Errorf("per-capita with zero population = %v, expected +Inf", rows[0].GDPPerCapitaK)
	}
}

func TestProjectEmptySeriesRejected(t *testing.T) {
	_, err := Project(history.Series{}, DefaultBaselineContext(), PolicyShock{}, DefaultCoefficients())
	if err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestPopulationPath(t *testing.T) {
	path := PopulationPath(1400, 0.9, 3)
	if len(path) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(path))
	}
	if path[0] != 1400 {
		t.Errorf("path[0] = %v, expected 1400", path[0])
	}
	expected := 1400 * math.Pow(1.009, 2)
	if math.Abs(path[2]-expected) > 1e-9 {
		t.Errorf("path[2] = %v, expected %v", path[2], expected)
	}

	// Zero growth keeps the path flat.
	flat := PopulationPath(1400, 0, 3)
	for _, p := range flat {
		if p != 1400 {
			t.Errorf("flat path entry = %v, expected 1400", p)
		}
	}
}
