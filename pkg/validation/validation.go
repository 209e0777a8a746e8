// Package validation provides input validation for simulation requests.
// Invalid inputs are rejected before any computation; the engine never
// silently coerces them.
package validation

import (
	"fmt"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/mathutil"
	"github.com/bhum/policy-pulse/pkg/projection"
)

// ValidateShock rejects non-finite shock values. Any finite value is
// accepted; slider ranges are a presentation concern.
func ValidateShock(shock projection.PolicyShock) error {
	if !mathutil.IsFinite(shock.RateChange) {
		return fmt.Errorf("rate change must be finite, got %v", shock.RateChange)
	}
	if !mathutil.IsFinite(shock.LiquidityChange) {
		return fmt.Errorf("liquidity change must be finite, got %v", shock.LiquidityChange)
	}
	if !mathutil.IsFinite(shock.InflationChange) {
		return fmt.Errorf("inflation change must be finite, got %v", shock.InflationChange)
	}
	return nil
}

// ValidateContext rejects baseline contexts that cannot produce meaningful
// per-capita or guidance metrics.
func ValidateContext(ctx projection.BaselineContext) error {
	if ctx.PopulationM <= 0 {
		return fmt.Errorf("base population must be positive, got %v", ctx.PopulationM)
	}
	if ctx.PopulationGrowth < 0 {
		return fmt.Errorf("population growth must be non-negative, got %v", ctx.PopulationGrowth)
	}
	if !mathutil.IsFinite(ctx.PolicyRate) || !mathutil.IsFinite(ctx.Inflation) || !mathutil.IsFinite(ctx.TargetInflation) {
		return fmt.Errorf("baseline levels must be finite")
	}
	return nil
}

// ValidateSeries rejects series that violate the history invariants or are
// too short for the growth-rate metric.
func ValidateSeries(series history.Series) error {
	if err := series.Validate(); err != nil {
		return err
	}
	if len(series) < 2 {
		return fmt.Errorf("growth-rate metrics require at least 2 years of history, got %d", len(series))
	}
	return nil
}

// ValidateRequest validates a full simulation request.
func ValidateRequest(series history.Series, ctx projection.BaselineContext, shock projection.PolicyShock) error {
	if err := ValidateSeries(series); err != nil {
		return err
	}
	if err := ValidateContext(ctx); err != nil {
		return err
	}
	return ValidateShock(shock)
}

// ValidateOutputFormat checks that the requested output format is known.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %q or %q",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateTheme checks that the requested presentation theme is known.
func ValidateTheme(theme string) error {
	switch theme {
	case "", constants.ThemeLight, constants.ThemeDark:
		return nil
	default:
		return fmt.Errorf("invalid theme %q: must be %q or %q",
			theme, constants.ThemeLight, constants.ThemeDark)
	}
}
