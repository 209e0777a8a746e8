// Package simulation orchestrates the projection engine: it resolves the
// baseline series, applies each configured scenario's shock, and bundles
// the projected rows, risk assessment, derived metrics, and insights into
// one result per scenario.
package simulation

import (
	"fmt"

	"github.com/bhum/policy-pulse/internal/config"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/insights"
	"github.com/bhum/policy-pulse/pkg/macro"
	"github.com/bhum/policy-pulse/pkg/mathutil"
	"github.com/bhum/policy-pulse/pkg/projection"
	"github.com/bhum/policy-pulse/pkg/risk"
	"github.com/bhum/policy-pulse/pkg/validation"
	"go.uber.org/zap"
)

// ComparisonRow compares one latest-year metric between baseline and
// projection.
type ComparisonRow struct {
	Metric    string  `json:"metric"`
	Baseline  float64 `json:"baseline"`
	Projected float64 `json:"projected"`
	ChangePct float64 `json:"changePct"`
}

// SnapshotEntry is one line of the latest-year summary.
type SnapshotEntry struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// Result holds everything computed for one scenario.
type Result struct {
	Scenario   string                 `json:"scenario"`
	Shock      projection.PolicyShock `json:"shock"`
	Rows       []projection.Row       `json:"rows"`
	Risk       risk.Assessment        `json:"risk"`
	Metrics    macro.Metrics          `json:"metrics"`
	Insights   []string               `json:"insights"`
	Comparison []ComparisonRow        `json:"comparison"`
	Snapshot   []SnapshotEntry        `json:"snapshot"`
}

// Simulate runs the full pipeline for one shock against a resolved series.
// Everything is computed fresh; nothing is cached across calls.
func Simulate(logger *zap.Logger, series history.Series, ctx projection.BaselineContext, shock projection.PolicyShock, coeff projection.Coefficients) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validation.ValidateRequest(series, ctx, shock); err != nil {
		return Result{}, fmt.Errorf("invalid simulation input: %w", err)
	}

	if shock.IsZero() {
		logger.Debug("zero shock, projection mirrors the baseline",
			zap.String("op", "simulation.Simulate"),
		)
	}

	rows, err := projection.Project(series, ctx, shock, coeff)
	if err != nil {
		return Result{}, err
	}

	assessment := risk.Score(shock)

	metrics, err := macro.Derive(series, rows, ctx, shock)
	if err != nil {
		return Result{}, err
	}

	logger.Debug("scenario computed",
		zap.String("op", "simulation.Simulate"),
		zap.Float64("riskScore", assessment.Score),
		zap.String("riskLevel", assessment.Level.String()),
		zap.String("guidance", string(metrics.Guidance)),
	)

	return Result{
		Shock:      shock,
		Rows:       rows,
		Risk:       assessment,
		Metrics:    metrics,
		Insights:   insights.Generate(shock, assessment),
		Comparison: latestYearComparison(rows),
		Snapshot:   latestYearSnapshot(rows, metrics),
	}, nil
}

// Run processes every active scenario in the configuration. The baseline
// series is resolved once through the configured cache so repeated shock
// adjustments share a stable history.
func Run(logger *zap.Logger, conf config.Configuration, cache history.SeriesCache) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	series, err := history.Resolve(cache, conf.History.GeneratorConfig(), conf.History.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve historical series: %w", err)
	}

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "simulation.Run"),
			)
			continue
		}

		shock, err := scenario.ResolveShock()
		if err != nil {
			return results, err
		}

		result, err := Simulate(logger, series, conf.Baseline, shock, conf.Coefficients)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		result.Scenario = scenario.Name
		results = append(results, result)
	}

	return results, nil
}

// latestYearComparison builds the baseline-vs-projected table for the
// final year of the projection.
func latestYearComparison(rows []projection.Row) []ComparisonRow {
	latest := rows[len(rows)-1]
	return []ComparisonRow{
		{
			Metric:    "GDP (billions)",
			Baseline:  latest.GDP,
			Projected: latest.ProjectedGDP,
			ChangePct: changePct(latest.GDP, latest.ProjectedGDP),
		},
		{
			Metric:    "Inflation (%)",
			Baseline:  latest.Inflation,
			Projected: latest.ProjectedInflation,
			ChangePct: changePct(latest.Inflation, latest.ProjectedInflation),
		},
		{
			Metric:    "GDP per capita (k)",
			Baseline:  latest.GDPPerCapitaK,
			Projected: latest.ProjectedPerCapitaK,
			ChangePct: changePct(latest.GDPPerCapitaK, latest.ProjectedPerCapitaK),
		},
	}
}

// latestYearSnapshot is the single persisted-in-memory summary of the run.
func latestYearSnapshot(rows []projection.Row, metrics macro.Metrics) []SnapshotEntry {
	latest := rows[len(rows)-1]
	return []SnapshotEntry{
		{Metric: "Baseline GDP (b)", Value: latest.GDP},
		{Metric: "Projected GDP (b)", Value: latest.ProjectedGDP},
		{Metric: "Baseline Inflation (%)", Value: latest.Inflation},
		{Metric: "Projected Inflation (%)", Value: latest.ProjectedInflation},
		{Metric: "Real Policy Rate (%)", Value: metrics.RealInterestRate},
		{Metric: "GDP Growth (%)", Value: metrics.GDPGrowthPct},
	}
}

// changePct is a display value for the comparison table, rounded to two
// decimals.
func changePct(baseline, projected float64) float64 {
	if baseline == 0 {
		return 0
	}
	return mathutil.Round((projected - baseline) / baseline * 100)
}
