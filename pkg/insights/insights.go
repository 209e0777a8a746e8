// Package insights turns the computed scenario signals into rule-based
// narrative statements. Output is deterministic and fixed-order: the
// dominant risk channel first, then one directional statement per channel,
// then the overall risk assessment.
package insights

import (
	"fmt"

	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/projection"
	"github.com/bhum/policy-pulse/pkg/risk"
)

// Generate produces the full insight list for one scenario.
func Generate(shock projection.PolicyShock, assessment risk.Assessment) []string {
	statements := make([]string, 0, 5)

	dominant := assessment.Dominant()
	statements = append(statements, fmt.Sprintf(
		"The largest contributor to risk is %s (contribution: %.2f).",
		dominant, assessment.Contributions[dominant]))

	statements = append(statements, rateStatement(shock.RateChange))
	statements = append(statements, liquidityStatement(shock.LiquidityChange))
	statements = append(statements, inflationStatement(shock.InflationChange))
	statements = append(statements, overallStatement(assessment.Level))

	return statements
}

func rateStatement(rateChange float64) string {
	switch {
	case rateChange > 0:
		return fmt.Sprintf("Rising interest rates (%+.2f pp) are likely to slow GDP growth and tighten financial conditions.", rateChange)
	case rateChange < 0:
		return fmt.Sprintf("Cutting interest rates (%+.2f pp) provides stimulus and may boost growth.", rateChange)
	default:
		return "Interest rate stance unchanged in this scenario."
	}
}

func liquidityStatement(liquidityChange float64) string {
	switch {
	case liquidityChange < 0:
		return fmt.Sprintf("Liquidity contraction (%+.2f%%) could pressure markets and credit availability.", liquidityChange)
	case liquidityChange > 0:
		return fmt.Sprintf("Liquidity injection (%+.2f%%) supports activity and financial markets.", liquidityChange)
	default:
		return "No major change in liquidity."
	}
}

func inflationStatement(inflationChange float64) string {
	switch {
	case inflationChange > constants.InflationInsightThreshold:
		return fmt.Sprintf("Inflation is rising by %+.2f pp; monetary tightening may be appropriate to anchor expectations.", inflationChange)
	case inflationChange < -constants.InflationInsightThreshold:
		return fmt.Sprintf("Inflation is falling by %+.2f pp; policy could stay accommodative to support demand.", inflationChange)
	default:
		return "Inflation change is modest."
	}
}

func overallStatement(level risk.Level) string {
	switch level {
	case risk.High:
		return "Overall assessment: High risk. Consider combining measured liquidity support with targeted supply-side measures."
	case risk.Medium:
		return "Overall assessment: Medium risk. Monitor incoming data and be ready to adjust policy."
	default:
		return "Overall assessment: Low risk. Scenario appears manageable."
	}
}
