// Package macro derives the policy-facing metrics from a projected
// scenario: the real interest rate, the inflation target gap, GDP growth,
// the yield-curve shift, and the forward-guidance classification.
package macro

import (
	"fmt"
	"math"

	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/projection"
)

// TenorShift is one maturity point on the yield curve with its base and
// projected yields.
type TenorShift struct {
	Tenor          string  `json:"tenor"`
	BaseYield      float64 `json:"baseYield"`
	Sensitivity    float64 `json:"sensitivity"`
	ProjectedYield float64 `json:"projectedYield"`
}

// tenor base yields and rate sensitivities; sensitivity decays with tenor
// length so the short end moves the most.
var tenorTable = []TenorShift{
	{Tenor: "3M", BaseYield: 6.4, Sensitivity: 1.2},
	{Tenor: "1Y", BaseYield: 6.6, Sensitivity: 1.0},
	{Tenor: "2Y", BaseYield: 6.8, Sensitivity: 0.85},
	{Tenor: "5Y", BaseYield: 7.0, Sensitivity: 0.6},
	{Tenor: "10Y", BaseYield: 7.1, Sensitivity: 0.45},
	{Tenor: "30Y", BaseYield: 7.3, Sensitivity: 0.3},
}

// Guidance is the forward-guidance classification.
type Guidance string

const (
	GuidanceTighten Guidance = "Tighten significantly"
	GuidanceEase    Guidance = "Scope to ease"
	GuidanceNeutral Guidance = "Neutral / wait-and-watch"
	GuidanceMixed   Guidance = "Data-dependent / mixed"
)

// Metrics is the derived macro output for one scenario.
type Metrics struct {
	RealInterestRate float64      `json:"realInterestRate"`
	NominalRate      float64      `json:"nominalRate"`
	ProjectedInfl    float64      `json:"projectedInflation"`
	TargetGap        float64      `json:"inflationTargetGap"`
	GDPGrowthPct     float64      `json:"gdpGrowthRatePct"`
	YieldCurve       []TenorShift `json:"yieldCurve"`
	Guidance         Guidance     `json:"guidance"`
}

// RealInterestRate is the post-shock nominal policy rate minus post-shock
// inflation.
func RealInterestRate(ctx projection.BaselineContext, shock projection.PolicyShock) float64 {
	return (ctx.PolicyRate + shock.RateChange) - (ctx.Inflation + shock.InflationChange)
}

// TargetGap is the latest projected inflation minus the target.
func TargetGap(projectedInflationLatest, target float64) float64 {
	return projectedInflationLatest - target
}

// GrowthRatePct computes the growth rate of the latest projected GDP over
// the previous year's baseline GDP. A series with fewer than two years has
// no previous year and is rejected.
func GrowthRatePct(series history.Series, projectedLatest float64) (float64, error) {
	if len(series) < 2 {
		return 0, fmt.Errorf("growth rate requires at least 2 years of history, got %d", len(series))
	}
	previous := series[len(series)-2].GDP
	return (projectedLatest/previous - 1) * 100, nil
}

// YieldCurve shifts each tenor's base yield by the rate change scaled by
// the tenor's sensitivity.
func YieldCurve(rateChange float64) []TenorShift {
	curve := make([]TenorShift, len(tenorTable))
	for i, tenor := range tenorTable {
		tenor.ProjectedYield = tenor.BaseYield + rateChange*tenor.Sensitivity
		curve[i] = tenor
	}
	return curve
}

// Classify maps the real rate and target gap onto the guidance decision
// table. Rules are evaluated in priority order; the first match wins.
func Classify(realRate, targetGap float64) Guidance {
	switch {
	case realRate < 0 && targetGap > 0.5:
		return GuidanceTighten
	case realRate > 1.0 && targetGap < -0.5:
		return GuidanceEase
	case math.Abs(realRate-0.5) < 0.5 && math.Abs(targetGap) < 0.5:
		return GuidanceNeutral
	default:
		return GuidanceMixed
	}
}

// Derive computes the full metrics bundle from the projected rows. The
// rows must be non-empty and aligned with the series they were projected
// from; a mismatch is a programmer error.
func Derive(series history.Series, rows []projection.Row, ctx projection.BaselineContext, shock projection.PolicyShock) (Metrics, error) {
	if len(rows) == 0 {
		return Metrics{}, fmt.Errorf("cannot derive metrics from empty projection")
	}
	if len(rows) != len(series) {
		return Metrics{}, fmt.Errorf("projection rows (%d) do not align with series (%d)", len(rows), len(series))
	}

	latest := rows[len(rows)-1]
	growth, err := GrowthRatePct(series, latest.ProjectedGDP)
	if err != nil {
		return Metrics{}, err
	}

	realRate := RealInterestRate(ctx, shock)
	gap := TargetGap(latest.ProjectedInflation, ctx.TargetInflation)

	return Metrics{
		RealInterestRate: realRate,
		NominalRate:      ctx.PolicyRate + shock.RateChange,
		ProjectedInfl:    latest.ProjectedInflation,
		TargetGap:        gap,
		GDPGrowthPct:     growth,
		YieldCurve:       YieldCurve(shock.RateChange),
		Guidance:         Classify(realRate, gap),
	}, nil
}
