// Package projection implements the scenario projection engine: the
// nonlinear shock response model, volatility-derived confidence bands, the
// population path, and the per-year projection rows. Every function here is
// pure; the engine holds no state between simulation requests.
package projection

import (
	"math"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/mathutil"
)

// PolicyShock is the user-specified perturbation applied to the baseline.
// RateChange and InflationChange are in percentage points, LiquidityChange
// in percent. Any finite value is accepted; slider ranges belong to the
// presentation shell.
type PolicyShock struct {
	RateChange      float64 `json:"rateChange" mapstructure:"rateChange"`
	LiquidityChange float64 `json:"liquidityChange" mapstructure:"liquidityChange"`
	InflationChange float64 `json:"inflationChange" mapstructure:"inflationChange"`
}

// IsZero reports whether the shock leaves the baseline untouched.
func (s PolicyShock) IsZero() bool {
	return s.RateChange == 0 && s.LiquidityChange == 0 && s.InflationChange == 0
}

// BaselineContext holds the policy levels the shock perturbs plus the
// population inputs for per-capita normalization.
type BaselineContext struct {
	PolicyRate       float64 `json:"policyRate" mapstructure:"policyRate"`
	Inflation        float64 `json:"inflation" mapstructure:"inflation"`
	PopulationM      float64 `json:"populationMillions" mapstructure:"populationMillions"`
	PopulationGrowth float64 `json:"populationGrowthPct" mapstructure:"populationGrowthPct"`
	TargetInflation  float64 `json:"targetInflation" mapstructure:"targetInflation"`
}

// DefaultBaselineContext returns the baseline the dashboard ships with.
func DefaultBaselineContext() BaselineContext {
	return BaselineContext{
		PolicyRate:       constants.DefaultBaselinePolicyRate,
		Inflation:        constants.DefaultBaselineInflation,
		PopulationM:      constants.DefaultBasePopulation,
		PopulationGrowth: constants.DefaultPopulationGrowth,
		TargetInflation:  constants.DefaultTargetInflation,
	}
}

// Coefficients are the tunable response-curve parameters of the shock model.
type Coefficients struct {
	RateLinear         float64 `mapstructure:"rateLinear"`
	RateQuadratic      float64 `mapstructure:"rateQuadratic"`
	LiquidityGain      float64 `mapstructure:"liquidityGain"`
	LiquidityScale     float64 `mapstructure:"liquidityScale"`
	InflationLinear    float64 `mapstructure:"inflationLinear"`
	InflationPenalty   float64 `mapstructure:"inflationPenalty"`
	InflationThreshold float64 `mapstructure:"inflationThreshold"`
}

// DefaultCoefficients returns the calibration used by every dashboard
// iteration.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		RateLinear:         constants.RateLinear,
		RateQuadratic:      constants.RateQuadratic,
		LiquidityGain:      constants.LiquidityGain,
		LiquidityScale:     constants.LiquidityScale,
		InflationLinear:    constants.InflationLinear,
		InflationPenalty:   constants.InflationPenalty,
		InflationThreshold: constants.InflationThreshold,
	}
}

// Effects breaks down the combined GDP response by channel. All values are
// percent of GDP. RatePct and InflationPct subtract from growth when
// positive; LiquidityPct adds.
type Effects struct {
	RatePct      float64
	LiquidityPct float64
	InflationPct float64
	CombinedPct  float64
}

// ShockEffects maps the three policy shocks into their channel effects.
//
// The rate channel is linear plus a quadratic drag that penalizes either
// direction equally; the liquidity channel saturates through tanh so large
// injections see diminishing returns; the inflation channel is linear with
// a superlinear penalty beyond the threshold, in the direction of the shock.
func ShockEffects(shock PolicyShock, coeff Coefficients) Effects {
	ratePct := coeff.RateLinear*shock.RateChange +
		coeff.RateQuadratic*shock.RateChange*shock.RateChange

	liquidityPct := coeff.LiquidityGain * math.Tanh(shock.LiquidityChange/coeff.LiquidityScale)

	inflationPct := coeff.InflationLinear * shock.InflationChange
	if excess := math.Abs(shock.InflationChange) - coeff.InflationThreshold; excess > 0 {
		inflationPct += coeff.InflationPenalty * excess * excess * mathutil.Sign(shock.InflationChange)
	}

	return Effects{
		RatePct:      ratePct,
		LiquidityPct: liquidityPct,
		InflationPct: inflationPct,
		CombinedPct:  -ratePct + liquidityPct - inflationPct,
	}
}

// ProjectGDP applies the combined percentage effect to a baseline GDP
// level. GDP is floored at zero, never negative.
func ProjectGDP(gdp, combinedPct float64) float64 {
	return math.Max(gdp*(1+combinedPct/constants.PercentageMultiplier), 0)
}

// ProjectInflation shifts baseline inflation by the shock and clips the
// result to a plausible range. The clip is independent of the GDP-side
// effect computation.
func ProjectInflation(inflation, inflationChange float64) float64 {
	return mathutil.Clip(inflation+inflationChange,
		constants.InflationProjectionFloor, constants.InflationProjectionCeiling)
}
