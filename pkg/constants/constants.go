// Package constants provides shared constants for the policy-pulse application.
package constants

// Historical series generation defaults. These reproduce the illustrative
// baseline used throughout the dashboard iterations.
const (
	// DefaultStartYear is the first year of the synthetic history
	DefaultStartYear = 2010

	// DefaultEndYear is the last year of the synthetic history (inclusive)
	DefaultEndYear = 2025

	// DefaultBaseGDP is the GDP level (billions) in the first year
	DefaultBaseGDP = 1000.0

	// DefaultGDPStep is the deterministic annual GDP increment (billions)
	DefaultGDPStep = 50.0

	// DefaultGDPNoise bounds the integer-uniform GDP noise at +/- this value
	DefaultGDPNoise = 20

	// DefaultInflationCenter is the center of the synthetic inflation draw (%)
	DefaultInflationCenter = 5.0

	// DefaultInflationSpread bounds the continuous-uniform inflation noise (%)
	DefaultInflationSpread = 1.0
)

// Shock response coefficients. All are overridable through configuration;
// these defaults match the calibration the simulator has always shipped with.
const (
	// RateLinear is the linear sensitivity of GDP to a policy rate change
	RateLinear = 0.6

	// RateQuadratic is the accelerating drag coefficient on rate changes
	RateQuadratic = 0.25

	// LiquidityGain is the saturating liquidity response amplitude
	LiquidityGain = 0.15

	// LiquidityScale divides the liquidity change inside tanh
	LiquidityScale = 5.0

	// InflationLinear is the linear sensitivity of GDP to an inflation change
	InflationLinear = 0.35

	// InflationPenalty is the superlinear penalty beyond the inflation threshold
	InflationPenalty = 0.05

	// InflationThreshold is the absolute inflation change beyond which the
	// quadratic penalty applies
	InflationThreshold = 2.0
)

// Uncertainty band parameters.
const (
	// VolatilityFloor substitutes for degenerate historical volatility
	VolatilityFloor = 0.02

	// BandWideningCap limits the shock-driven band widening to 60%
	BandWideningCap = 0.6

	// BandStrengthScale divides shock strength in the band multiplier
	BandStrengthScale = 5.0

	// RateStrengthWeight weights |rate change| in shock strength
	RateStrengthWeight = 0.6

	// LiquidityStrengthWeight weights |liquidity change| in shock strength
	LiquidityStrengthWeight = 0.3

	// InflationStrengthWeight weights |inflation change| in shock strength
	InflationStrengthWeight = 0.8
)

// Risk scoring parameters.
const (
	// RateRiskWeight weights the rate channel in the composite risk score
	RateRiskWeight = 3.0

	// LiquidityRiskWeight weights the liquidity channel
	LiquidityRiskWeight = 2.0

	// InflationRiskWeight weights the inflation channel; inflation shocks
	// are treated as riskiest
	InflationRiskWeight = 4.0

	// RiskNormConstant maps the extreme slider combination to a score of 10
	RiskNormConstant = 9.0

	// RiskScaleMax is the upper bound of the normalized risk score
	RiskScaleMax = 10.0

	// MediumRiskThreshold is the lowest score classified as Medium
	MediumRiskThreshold = 3.0

	// HighRiskThreshold is the lowest score classified as High
	HighRiskThreshold = 6.0
)

// Projection bounds.
const (
	// InflationProjectionFloor is the hard floor on projected inflation (%)
	InflationProjectionFloor = -10.0

	// InflationProjectionCeiling is the hard ceiling on projected inflation (%)
	InflationProjectionCeiling = 50.0
)

// Baseline context defaults.
const (
	// DefaultBaselinePolicyRate is the baseline nominal policy rate (%)
	DefaultBaselinePolicyRate = 6.0

	// DefaultBaselineInflation is the baseline inflation level (%)
	DefaultBaselineInflation = 5.0

	// DefaultBasePopulation is the base population in millions
	DefaultBasePopulation = 1400.0

	// DefaultPopulationGrowth is the annual population growth (%)
	DefaultPopulationGrowth = 0.9

	// DefaultTargetInflation is the central bank inflation target (%)
	DefaultTargetInflation = 4.0
)

// Insight thresholds.
const (
	// InflationInsightThreshold separates modest from material inflation moves
	InflationInsightThreshold = 0.5
)

// Output format constants.
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Theme constants for the pretty formatter.
const (
	// ThemeLight is the default presentation theme
	ThemeLight = "light"

	// ThemeDark renders headers in upper case for dark terminals
	ThemeDark = "dark"
)

// Configuration file constants.
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultSeed seeds the synthetic history when none is configured
	DefaultSeed int64 = 42
)

// Server configuration defaults.
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the maximum accepted request body (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Numeric tolerances.
const (
	// DecimalPrecision is the precision for display rounding (2 decimal places)
	DecimalPrecision = 100

	// ComparisonTolerance is the tolerance for float comparisons in logic
	ComparisonTolerance = 1e-9

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
