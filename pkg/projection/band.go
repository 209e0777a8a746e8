package projection

import (
	"math"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/mathutil"
	"github.com/bhum/policy-pulse/pkg/stats"
)

// Volatility estimates relative historical GDP volatility as the standard
// deviation of year-over-year differences divided by the mean level. A
// degenerate result (non-finite or non-positive) is replaced by a fixed
// floor rather than surfaced as an error.
func Volatility(gdp []float64) float64 {
	diffs := stats.Diff(gdp)
	mean := stats.Mean(gdp)

	vol := 0.0
	if mean != 0 {
		vol = stats.StdDev(diffs) / mean
	}
	if !mathutil.IsFinite(vol) || vol <= 0 {
		return constants.VolatilityFloor
	}
	return vol
}

// ShockStrength is the weighted magnitude of the combined shock used to
// widen the confidence band.
func ShockStrength(shock PolicyShock) float64 {
	return constants.RateStrengthWeight*math.Abs(shock.RateChange) +
		constants.LiquidityStrengthWeight*math.Abs(shock.LiquidityChange) +
		constants.InflationStrengthWeight*math.Abs(shock.InflationChange)
}

// BandMultiplier widens the band with shock strength, capped at 60%.
func BandMultiplier(shock PolicyShock) float64 {
	return 1 + math.Min(constants.BandWideningCap, ShockStrength(shock)/constants.BandStrengthScale)
}

// Band computes the symmetric confidence band half-width around a
// projected GDP value for one year.
func Band(gdp, volatility float64, shock PolicyShock) float64 {
	return gdp * volatility * BandMultiplier(shock)
}

// BandAround returns the (best, worst) bounds around projectedGDP. The
// worst bound is floored at zero so worst <= projected <= best always
// holds.
func BandAround(projectedGDP, band float64) (best, worst float64) {
	best = projectedGDP + band
	worst = math.Max(projectedGDP-band, 0)
	return best, worst
}
