// Package server exposes the simulation engine over a small JSON API. It
// is a thin adapter: it translates requests into engine value objects and
// renders the returned results, holding no scenario state of its own.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bhum/policy-pulse/internal/config"
	"github.com/bhum/policy-pulse/internal/simulation"
	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/output"
	"github.com/bhum/policy-pulse/pkg/projection"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	cache       history.SeriesCache
	maxBodySize int64
	version     string
}

// simulateRequest is the JSON body of /api/simulate. Omitted sections use
// the stock defaults, so `{"shock": {"rateChange": 1}}` is a full request.
type simulateRequest struct {
	Baseline     *projection.BaselineContext `json:"baseline"`
	Shock        projection.PolicyShock      `json:"shock"`
	Coefficients *projection.Coefficients    `json:"coefficients"`
	Seed         *int64                      `json:"seed"`
}

// exportRequest is the JSON body of /api/export: a scenario description to
// render as a configuration file. A preset name takes precedence over raw
// shock values, matching the config loader.
type exportRequest struct {
	Name         string                      `json:"name"`
	Preset       string                      `json:"preset"`
	Baseline     *projection.BaselineContext `json:"baseline"`
	Shock        projection.PolicyShock      `json:"shock"`
	Coefficients *projection.Coefficients    `json:"coefficients"`
	Seed         *int64                      `json:"seed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler constructs the HTTP handler that serves the simulation API.
// The cache memoizes the baseline series across requests so repeated
// shock adjustments in one session share a stable history.
func NewHandler(logger *zap.Logger, cache history.SeriesCache, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = history.NewMemoryCache()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, cache: cache, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate", h.handleSimulate)
	mux.HandleFunc("/api/simulate/csv", h.handleSimulateCSV)
	mux.HandleFunc("/api/presets", h.handlePresets)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// runSimulation decodes a request body and runs the engine for it.
func (h *handler) runSimulation(w http.ResponseWriter, r *http.Request) (simulation.Result, bool) {
	var req simulateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return simulation.Result{}, false
	}

	ctx := projection.DefaultBaselineContext()
	if req.Baseline != nil {
		ctx = *req.Baseline
	}
	coeff := projection.DefaultCoefficients()
	if req.Coefficients != nil {
		coeff = *req.Coefficients
	}
	seed := constants.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	series, err := history.Resolve(h.cache, history.DefaultGeneratorConfig(), seed)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return simulation.Result{}, false
	}

	result, err := simulation.Simulate(h.logger, series, ctx, req.Shock, coeff)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return simulation.Result{}, false
	}
	result.Scenario = "api"
	return result, true
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	result, ok := h.runSimulation(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// handleSimulateCSV runs the same simulation but streams the projection
// rows as a CSV download, the one persisted artifact of a run.
func (h *handler) handleSimulateCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	result, ok := h.runSimulation(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="monetary_simulation.csv"`)
	if err := output.CsvFormat(w, result.Rows); err != nil {
		h.logger.Error("failed to stream CSV",
			zap.String("op", "server.handleSimulateCSV"),
			zap.Error(err),
		)
	}
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]string{"presets": config.PresetNames()})
}

// Mirror structs for YAML export. They repeat the configuration file
// schema so the marshaled document keeps its section order and loads back
// through the config loader unchanged.
type exportBaselineYAML struct {
	PolicyRate       float64 `yaml:"policyRate"`
	Inflation        float64 `yaml:"inflation"`
	PopulationM      float64 `yaml:"populationMillions"`
	PopulationGrowth float64 `yaml:"populationGrowthPct"`
	TargetInflation  float64 `yaml:"targetInflation"`
}

type exportHistoryYAML struct {
	StartYear       int     `yaml:"startYear"`
	EndYear         int     `yaml:"endYear"`
	BaseGDP         float64 `yaml:"baseGdp"`
	GDPStep         float64 `yaml:"gdpStep"`
	GDPNoise        int     `yaml:"gdpNoise"`
	InflationCenter float64 `yaml:"inflationCenter"`
	InflationSpread float64 `yaml:"inflationSpread"`
	Seed            int64   `yaml:"seed"`
}

type exportCoefficientsYAML struct {
	RateLinear         float64 `yaml:"rateLinear"`
	RateQuadratic      float64 `yaml:"rateQuadratic"`
	LiquidityGain      float64 `yaml:"liquidityGain"`
	LiquidityScale     float64 `yaml:"liquidityScale"`
	InflationLinear    float64 `yaml:"inflationLinear"`
	InflationPenalty   float64 `yaml:"inflationPenalty"`
	InflationThreshold float64 `yaml:"inflationThreshold"`
}

type exportShockYAML struct {
	RateChange      float64 `yaml:"rateChange"`
	LiquidityChange float64 `yaml:"liquidityChange"`
	InflationChange float64 `yaml:"inflationChange"`
}

type exportScenarioYAML struct {
	Name   string          `yaml:"name"`
	Active bool            `yaml:"active"`
	Shock  exportShockYAML `yaml:"shock"`
}

type exportConfigYAML struct {
	Baseline     exportBaselineYAML     `yaml:"baseline"`
	History      exportHistoryYAML      `yaml:"history"`
	Coefficients exportCoefficientsYAML `yaml:"coefficients"`
	Scenarios    []exportScenarioYAML   `yaml:"scenarios"`
}

// handleExport renders a scenario description as configuration YAML so an
// API experiment can be saved to a file and replayed by the CLI.
func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	var req exportRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	scenario := config.Scenario{Name: req.Name, Active: true, Preset: req.Preset, Shock: req.Shock}
	shock, err := scenario.ResolveShock()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = "exported"
	}

	ctx := projection.DefaultBaselineContext()
	if req.Baseline != nil {
		ctx = *req.Baseline
	}
	coeff := projection.DefaultCoefficients()
	if req.Coefficients != nil {
		coeff = *req.Coefficients
	}
	seed := constants.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	gen := history.DefaultGeneratorConfig()

	payload := exportConfigYAML{
		Baseline: exportBaselineYAML{
			PolicyRate:       ctx.PolicyRate,
			Inflation:        ctx.Inflation,
			PopulationM:      ctx.PopulationM,
			PopulationGrowth: ctx.PopulationGrowth,
			TargetInflation:  ctx.TargetInflation,
		},
		History: exportHistoryYAML{
			StartYear:       gen.StartYear,
			EndYear:         gen.EndYear,
			BaseGDP:         gen.BaseGDP,
			GDPStep:         gen.GDPStep,
			GDPNoise:        gen.GDPNoise,
			InflationCenter: gen.InflationCenter,
			InflationSpread: gen.InflationSpread,
			Seed:            seed,
		},
		Coefficients: exportCoefficientsYAML{
			RateLinear:         coeff.RateLinear,
			RateQuadratic:      coeff.RateQuadratic,
			LiquidityGain:      coeff.LiquidityGain,
			LiquidityScale:     coeff.LiquidityScale,
			InflationLinear:    coeff.InflationLinear,
			InflationPenalty:   coeff.InflationPenalty,
			InflationThreshold: coeff.InflationThreshold,
		},
		Scenarios: []exportScenarioYAML{{
			Name:   name,
			Active: true,
			Shock: exportShockYAML{
				RateChange:      shock.RateChange,
				LiquidityChange: shock.LiquidityChange,
				InflationChange: shock.InflationChange,
			},
		}},
	}

	yamlBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to encode configuration: %w", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"configYaml": string(yamlBytes)})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Warn("request failed",
		zap.String("op", "server.writeError"),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
