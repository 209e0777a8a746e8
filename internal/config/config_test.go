package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/projection"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
scenarios:
  - name: baseline
    active: true
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Baseline.PolicyRate != constants.DefaultBaselinePolicyRate {
		t.Errorf("baseline policy rate = %v, expected default %v",
			conf.Baseline.PolicyRate, constants.DefaultBaselinePolicyRate)
	}
	if conf.History.StartYear != constants.DefaultStartYear || conf.History.EndYear != constants.DefaultEndYear {
		t.Errorf("history years = %d..%d, expected defaults", conf.History.StartYear, conf.History.EndYear)
	}
	if conf.Coefficients.RateLinear != constants.RateLinear {
		t.Errorf("rate linear coefficient = %v, expected default %v",
			conf.Coefficients.RateLinear, constants.RateLinear)
	}
	if conf.Cache.Backend != "memory" {
		t.Errorf("cache backend = %q, expected memory", conf.Cache.Backend)
	}
	if conf.Output.Format != constants.OutputFormatPretty {
		t.Errorf("output format = %q, expected pretty", conf.Output.Format)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfig(t, `
baseline:
  policyRate: 4.5
  targetInflation: 2.0
history:
  startYear: 2015
  endYear: 2020
  seed: 7
coefficients:
  rateLinear: 0.8
scenarios:
  - name: custom-hike
    active: true
    shock:
      rateChange: 1.5
output:
  format: csv
  theme: dark
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Baseline.PolicyRate != 4.5 {
		t.Errorf("policy rate = %v, expected 4.5", conf.Baseline.PolicyRate)
	}
	if conf.Baseline.TargetInflation != 2.0 {
		t.Errorf("target inflation = %v, expected 2.0", conf.Baseline.TargetInflation)
	}
	if conf.History.Seed != 7 {
		t.Errorf("seed = %v, expected 7", conf.History.Seed)
	}
	if conf.Coefficients.RateLinear != 0.8 {
		t.Errorf("rate linear = %v, expected override 0.8", conf.Coefficients.RateLinear)
	}
	// Untouched coefficients keep their defaults.
	if conf.Coefficients.RateQuadratic != constants.RateQuadratic {
		t.Errorf("rate quadratic = %v, expected default", conf.Coefficients.RateQuadratic)
	}
	if len(conf.Scenarios) != 1 || conf.Scenarios[0].Shock.RateChange != 1.5 {
		t.Errorf("scenario shock not loaded: %+v", conf.Scenarios)
	}
	if conf.Output.Theme != constants.ThemeDark {
		t.Errorf("theme = %q, expected dark", conf.Output.Theme)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestResolveShockPresets(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		expected projection.PolicyShock
	}{
		{
			name:     "Custom shock passes through",
			scenario: Scenario{Shock: projection.PolicyShock{RateChange: 0.75}},
			expected: projection.PolicyShock{RateChange: 0.75},
		},
		{
			name:     "Explicit custom preset passes through",
			scenario: Scenario{Preset: "custom", Shock: projection.PolicyShock{LiquidityChange: -2}},
			expected: projection.PolicyShock{LiquidityChange: -2},
		},
		{
			name:     "Tightening cycle preset",
			scenario: Scenario{Preset: "tightening-cycle"},
			expected: projection.PolicyShock{RateChange: 1.0, LiquidityChange: -1.0, InflationChange: -0.25},
		},
		{
			name:     "Stagflation preset",
			scenario: Scenario{Preset: "stagflation"},
			expected: projection.PolicyShock{RateChange: 0.5, LiquidityChange: -1.5, InflationChange: 1.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shock, err := tt.scenario.ResolveShock()
			if err != nil {
				t.Fatalf("ResolveShock failed: %v", err)
			}
			if shock != tt.expected {
				t.Errorf("shock = %+v, expected %+v", shock, tt.expected)
			}
		})
	}
}

func TestResolveShockUnknownPreset(t *testing.T) {
	if _, err := (Scenario{Preset: "doom-loop"}).ResolveShock(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		contains string
	}{
		{
			name:     "No active scenarios",
			mutate:   func(c *Configuration) { c.Scenarios = nil },
			contains: "No active scenarios",
		},
		{
			name: "Shock beyond slider range",
			mutate: func(c *Configuration) {
				c.Scenarios = []Scenario{{
					Name:   "extreme",
					Active: true,
					Shock:  projection.PolicyShock{RateChange: 3.5},
				}}
			},
			contains: "outside the usual",
		},
		{
			name: "Inverted year range",
			mutate: func(c *Configuration) {
				c.History.StartYear = 2025
				c.History.EndYear = 2010
			},
			contains: "precedes start year",
		},
		{
			name: "Unknown preset surfaces as warning",
			mutate: func(c *Configuration) {
				c.Scenarios = []Scenario{{Name: "odd", Active: true, Preset: "doom-loop"}}
			},
			contains: "unknown scenario preset",
		},
		{
			name:     "Unknown theme",
			mutate:   func(c *Configuration) { c.Output.Theme = "solarized" },
			contains: "invalid theme",
		},
		{
			name:     "Negative GDP noise",
			mutate:   func(c *Configuration) { c.History.GDPNoise = -20 },
			contains: "is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			tt.mutate(conf)

			warnings := conf.ValidateConfiguration()
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}

func TestValidateConfigurationCleanConfig(t *testing.T) {
	conf := DefaultConfiguration()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("default configuration should produce no warnings, got %v", warnings)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != 5 {
		t.Errorf("expected 5 presets, got %d: %v", len(names), names)
	}
}
