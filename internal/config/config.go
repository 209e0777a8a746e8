// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"math"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/projection"
	"github.com/bhum/policy-pulse/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for policy-pulse.
type Configuration struct {
	Baseline     projection.BaselineContext `mapstructure:"baseline"`
	History      HistoryConfig              `mapstructure:"history"`
	Coefficients projection.Coefficients    `mapstructure:"coefficients"`
	Scenarios    []Scenario                 `mapstructure:"scenarios"`
	Cache        CacheConfig                `mapstructure:"cache"`
	Logging      LoggingConfig              `mapstructure:"logging"`
	Output       OutputConfig               `mapstructure:"output"`
}

// HistoryConfig controls the synthetic history generator.
type HistoryConfig struct {
	StartYear       int     `mapstructure:"startYear"`
	EndYear         int     `mapstructure:"endYear"`
	BaseGDP         float64 `mapstructure:"baseGdp"`
	GDPStep         float64 `mapstructure:"gdpStep"`
	GDPNoise        int     `mapstructure:"gdpNoise"`
	InflationCenter float64 `mapstructure:"inflationCenter"`
	InflationSpread float64 `mapstructure:"inflationSpread"`
	Seed            int64   `mapstructure:"seed"`
}

// GeneratorConfig converts the history section into generator parameters.
func (h HistoryConfig) GeneratorConfig() history.GeneratorConfig {
	return history.GeneratorConfig{
		StartYear:       h.StartYear,
		EndYear:         h.EndYear,
		BaseGDP:         h.BaseGDP,
		GDPStep:         h.GDPStep,
		GDPNoise:        h.GDPNoise,
		InflationCenter: h.InflationCenter,
		InflationSpread: h.InflationSpread,
	}
}

// Scenario names one shock bundle to simulate. Either a preset name or raw
// shock values may be given; a preset takes precedence.
type Scenario struct {
	Name   string                 `mapstructure:"name"`
	Active bool                   `mapstructure:"active"`
	Preset string                 `mapstructure:"preset"`
	Shock  projection.PolicyShock `mapstructure:"shock"`
}

// CacheConfig selects the series cache backend.
type CacheConfig struct {
	Backend   string `mapstructure:"backend"` // memory, redis, none
	RedisAddr string `mapstructure:"redisAddr"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
	Theme  string `mapstructure:"theme"`  // light, dark
}

// presets are the named shock bundles carried over from the dashboard's
// scenario selector.
var presets = map[string]projection.PolicyShock{
	"tightening-cycle": {RateChange: 1.0, LiquidityChange: -1.0, InflationChange: -0.25},
	"easing-cycle":     {RateChange: -1.0, LiquidityChange: 2.0, InflationChange: 0.25},
	"liquidity-shock":  {RateChange: 0.0, LiquidityChange: -4.0, InflationChange: 0.2},
	"inflation-shock":  {RateChange: 0.5, LiquidityChange: 0.0, InflationChange: 1.5},
	"stagflation":      {RateChange: 0.5, LiquidityChange: -1.5, InflationChange: 1.2},
}

// PresetNames lists the available scenario presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// ResolveShock returns the shock for the scenario, resolving a preset name
// when one is set.
func (s Scenario) ResolveShock() (projection.PolicyShock, error) {
	if s.Preset == "" || s.Preset == "custom" {
		return s.Shock, nil
	}
	shock, ok := presets[s.Preset]
	if !ok {
		return projection.PolicyShock{}, fmt.Errorf("unknown scenario preset %q", s.Preset)
	}
	return shock, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, with defaults applied for every omitted field.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()
	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// DefaultConfiguration returns the configuration used when no file is
// supplied: the stock baseline with one active custom scenario.
func DefaultConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		// Defaults are static; failing to decode them is a programming error.
		panic(fmt.Sprintf("failed to decode default configuration: %v", err))
	}
	configuration.Scenarios = []Scenario{{Name: "baseline", Active: true}}
	return &configuration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("baseline.policyRate", constants.DefaultBaselinePolicyRate)
	v.SetDefault("baseline.inflation", constants.DefaultBaselineInflation)
	v.SetDefault("baseline.populationMillions", constants.DefaultBasePopulation)
	v.SetDefault("baseline.populationGrowthPct", constants.DefaultPopulationGrowth)
	v.SetDefault("baseline.targetInflation", constants.DefaultTargetInflation)

	v.SetDefault("history.startYear", constants.DefaultStartYear)
	v.SetDefault("history.endYear", constants.DefaultEndYear)
	v.SetDefault("history.baseGdp", constants.DefaultBaseGDP)
	v.SetDefault("history.gdpStep", constants.DefaultGDPStep)
	v.SetDefault("history.gdpNoise", constants.DefaultGDPNoise)
	v.SetDefault("history.inflationCenter", constants.DefaultInflationCenter)
	v.SetDefault("history.inflationSpread", constants.DefaultInflationSpread)
	v.SetDefault("history.seed", constants.DefaultSeed)

	v.SetDefault("coefficients.rateLinear", constants.RateLinear)
	v.SetDefault("coefficients.rateQuadratic", constants.RateQuadratic)
	v.SetDefault("coefficients.liquidityGain", constants.LiquidityGain)
	v.SetDefault("coefficients.liquidityScale", constants.LiquidityScale)
	v.SetDefault("coefficients.inflationLinear", constants.InflationLinear)
	v.SetDefault("coefficients.inflationPenalty", constants.InflationPenalty)
	v.SetDefault("coefficients.inflationThreshold", constants.InflationThreshold)

	v.SetDefault("cache.backend", "memory")

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.theme", constants.ThemeLight)
}

// ValidateConfiguration performs comprehensive configuration validation
// and returns warnings for conditions that do not block a run.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	active := 0
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		shock, err := scenario.ResolveShock()
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}

		// The engine accepts any finite value; values beyond the dashboard's
		// slider ranges are only worth flagging.
		if math.Abs(shock.RateChange) > 2.0 {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' rate change %+.2f pp is outside the usual +/-2.0 pp range", scenario.Name, shock.RateChange))
		}
		if math.Abs(shock.LiquidityChange) > 5.0 {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' liquidity change %+.2f%% is outside the usual +/-5.0%% range", scenario.Name, shock.LiquidityChange))
		}
		if math.Abs(shock.InflationChange) > 2.0 {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' inflation change %+.2f pp is outside the usual +/-2.0 pp range", scenario.Name, shock.InflationChange))
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios configured; nothing will be simulated")
	}

	if conf.History.EndYear < conf.History.StartYear {
		warnings = append(warnings, fmt.Sprintf(
			"History end year %d precedes start year %d", conf.History.EndYear, conf.History.StartYear))
	}

	if conf.History.GDPNoise < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"History GDP noise %d is negative; the generator will produce a noiseless series", conf.History.GDPNoise))
	}

	if err := validation.ValidateTheme(conf.Output.Theme); err != nil {
		warnings = append(warnings, err.Error())
	}

	return warnings
}
