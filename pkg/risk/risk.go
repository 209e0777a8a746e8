// Package risk computes the weighted composite risk score for a policy
// shock and classifies it into a discrete level.
package risk

import (
	"math"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/projection"
)

// Channel identifies one shock channel in the risk breakdown.
type Channel string

const (
	ChannelRate      Channel = "Interest Rate"
	ChannelLiquidity Channel = "Liquidity"
	ChannelInflation Channel = "Inflation"
)

// Channels lists the shock channels in declaration order.
var Channels = []Channel{ChannelRate, ChannelLiquidity, ChannelInflation}

// Level is the discrete risk classification.
type Level int

const (
	Low Level = iota
	Medium
	High
)

// String returns the display name of the risk level.
func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// Assessment is the full risk scoring output. Contributions are
// non-negative weighted magnitudes per channel; Score is the raw score
// normalized onto [0, 10].
type Assessment struct {
	Contributions map[Channel]float64 `json:"contributions"`
	Normalized    map[Channel]float64 `json:"normalizedContributions"`
	RawScore      float64             `json:"rawScore"`
	Score         float64             `json:"score"`
	Level         Level               `json:"-"`
	LevelName     string              `json:"level"`
}

// Score computes the composite risk assessment for a shock. The mapping is
// a pure three-way classifier with thresholds closed on the lower bound:
// score 3.0 is Medium, score 6.0 is High.
func Score(shock projection.PolicyShock) Assessment {
	contributions := map[Channel]float64{
		ChannelRate:      math.Abs(shock.RateChange) * constants.RateRiskWeight,
		ChannelLiquidity: math.Abs(shock.LiquidityChange) * constants.LiquidityRiskWeight,
		ChannelInflation: math.Abs(shock.InflationChange) * constants.InflationRiskWeight,
	}

	// Sum in fixed channel order; ranging over the map would make the
	// floating-point result depend on iteration order.
	raw := 0.0
	for _, channel := range Channels {
		raw += contributions[channel]
	}

	score := math.Min(constants.RiskScaleMax, raw/constants.RiskNormConstant*constants.RiskScaleMax)

	level := Low
	switch {
	case score >= constants.HighRiskThreshold:
		level = High
	case score >= constants.MediumRiskThreshold:
		level = Medium
	}

	return Assessment{
		Contributions: contributions,
		Normalized:    normalizeContributions(contributions),
		RawScore:      raw,
		Score:         score,
		Level:         level,
		LevelName:     level.String(),
	}
}

// normalizeContributions rescales the contributions onto [0, 1] across
// channels. When all contributions are equal the midpoint 0.5 is reported
// for every channel.
func normalizeContributions(contributions map[Channel]float64) map[Channel]float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, c := range contributions {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}

	normalized := make(map[Channel]float64, len(contributions))
	spread := hi - lo
	for channel, c := range contributions {
		if spread == 0 {
			normalized[channel] = 0.5
		} else {
			normalized[channel] = (c - lo) / spread
		}
	}
	return normalized
}

// Dominant returns the channel with the largest contribution. Exact ties
// break by a fixed priority: inflation, then liquidity, then rate.
func (a Assessment) Dominant() Channel {
	priority := []Channel{ChannelInflation, ChannelLiquidity, ChannelRate}

	dominant := priority[0]
	for _, channel := range priority[1:] {
		if a.Contributions[channel] > a.Contributions[dominant] {
			dominant = channel
		}
	}
	return dominant
}
