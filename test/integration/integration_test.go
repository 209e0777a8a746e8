package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bhum/policy-pulse/internal/config"
	"github.com/bhum/policy-pulse/internal/simulation"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/output"
	"github.com/bhum/policy-pulse/pkg/risk"
	"github.com/bhum/policy-pulse/pkg/testutil"
	"go.uber.org/zap"
)

// TestSimulationIntegrationBaseline runs the full pipeline from config file
// to formatted output, exactly as main() does.
func TestSimulationIntegrationBaseline(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("unexpected configuration warnings: %v", warnings)
	}

	results, err := simulation.Run(logger, *conf, history.NewMemoryCache())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The shelved scenario is inactive and must be skipped.
	if len(results) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(results))
	}

	expectedScenarios := []string{"baseline", "tightening", "stagflation"}
	for i, expected := range expectedScenarios {
		if results[i].Scenario != expected {
			t.Errorf("scenario %d = %q, expected %q", i, results[i].Scenario, expected)
		}
	}

	// Zero-shock scenario: projection equals history, risk floor.
	baseline := testutil.FindScenario(results, "baseline")
	if baseline == nil {
		t.Fatal("baseline scenario missing")
	}
	for _, row := range baseline.Rows {
		if row.ProjectedGDP != row.GDP {
			t.Errorf("baseline year %d projected GDP %v != %v", row.Year, row.ProjectedGDP, row.GDP)
		}
	}
	if baseline.Risk.Level != risk.Low || baseline.Risk.Score != 0 {
		t.Errorf("baseline risk = %v (%v), expected 0 and Low", baseline.Risk.Score, baseline.Risk.Level)
	}

	// All scenarios share the seeded history.
	tightening := testutil.FindScenario(results, "tightening")
	if tightening == nil {
		t.Fatal("tightening scenario missing")
	}
	for i := range baseline.Rows {
		if baseline.Rows[i].GDP != tightening.Rows[i].GDP {
			t.Errorf("row %d baseline GDP differs between scenarios", i)
		}
	}

	// Tightening contracts GDP relative to the baseline.
	for i := range tightening.Rows {
		if tightening.Rows[i].ProjectedGDP >= tightening.Rows[i].GDP {
			t.Errorf("year %d: tightening should contract GDP", tightening.Rows[i].Year)
		}
	}

	// Stagflation carries the highest risk score of the three.
	stagflation := testutil.FindScenario(results, "stagflation")
	if stagflation == nil {
		t.Fatal("stagflation scenario missing")
	}
	if stagflation.Risk.Score <= baseline.Risk.Score {
		t.Error("stagflation risk should exceed the baseline's")
	}

	// Every scenario produces the full output bundle.
	for _, result := range results {
		if len(result.Insights) != 5 {
			t.Errorf("scenario %s has %d insights, expected 5", result.Scenario, len(result.Insights))
		}
		if len(result.Metrics.YieldCurve) != 6 {
			t.Errorf("scenario %s yield curve has %d tenors, expected 6", result.Scenario, len(result.Metrics.YieldCurve))
		}
		if result.Metrics.Guidance == "" {
			t.Errorf("scenario %s missing guidance", result.Scenario)
		}
	}
}

// TestSimulationOutputFormats renders the results through both output
// paths and spot-checks the artifacts.
func TestSimulationOutputFormats(t *testing.T) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	results, err := simulation.Run(zap.NewNop(), *conf, history.NewMemoryCache())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var pretty bytes.Buffer
	output.PrettyFormat(&pretty, results, conf.Output.Theme)
	for _, fragment := range []string{
		"Results for scenario baseline",
		"Results for scenario tightening",
		"Risk score",
		"Insights",
	} {
		if !strings.Contains(pretty.String(), fragment) {
			t.Errorf("pretty output missing %q", fragment)
		}
	}

	var csv bytes.Buffer
	if err := output.CsvFormat(&csv, results[0].Rows); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	parsed, err := output.ReadCsv(&csv)
	if err != nil {
		t.Fatalf("ReadCsv() error = %v", err)
	}
	if len(parsed) != len(results[0].Rows) {
		t.Errorf("CSV round trip row count = %d, expected %d", len(parsed), len(results[0].Rows))
	}
}

// TestSimulationDeterminism checks that runs with the same seeded config
// are byte-for-byte reproducible.
func TestSimulationDeterminism(t *testing.T) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	first, err := simulation.Run(zap.NewNop(), *conf, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := simulation.Run(zap.NewNop(), *conf, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var a, b bytes.Buffer
	output.PrettyFormat(&a, first, "light")
	output.PrettyFormat(&b, second, "light")
	if a.String() != b.String() {
		t.Error("seeded runs should render identically")
	}
}
