// Package output provides utilities for formatting and exporting
// simulation results. Values are rendered at display precision in the
// pretty format and at full precision in CSV; rounding is a presentation
// concern, never part of the engine contract.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bhum/policy-pulse/internal/simulation"
	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/projection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// csvHeader lists the projection row columns in export order.
var csvHeader = []string{
	"year",
	"gdp",
	"projected_gdp",
	"gdp_best",
	"gdp_worst",
	"inflation",
	"projected_inflation",
	"population_millions",
	"gdp_per_capita_k",
	"projected_gdp_per_capita_k",
}

// PrettyFormat outputs a human-readable rather than machine-readable
// rendering of the results. The theme only affects labels; it carries no
// global state.
func PrettyFormat(w io.Writer, results []simulation.Result, theme string) {
	p := message.NewPrinter(language.English)

	heading := func(text string) string {
		if theme == constants.ThemeDark {
			return strings.ToUpper(text)
		}
		return text
	}

	for i, result := range results {
		fmt.Fprintf(w, "--- %s ---\n", heading(fmt.Sprintf("Results for scenario %s", result.Scenario)))
		fmt.Fprintf(w, "Shock: rate %+.2f pp | liquidity %+.2f%% | inflation %+.2f pp\n",
			result.Shock.RateChange, result.Shock.LiquidityChange, result.Shock.InflationChange)
		_, _ = p.Fprintf(w, "Risk score: %.2f (%s)\n", result.Risk.Score, result.Risk.LevelName)
		_, _ = p.Fprintf(w, "Real policy rate: %.2f%% | target gap: %+.2f pp | guidance: %s\n",
			result.Metrics.RealInterestRate, result.Metrics.TargetGap, result.Metrics.Guidance)

		fmt.Fprintf(w, "\n%s\n", heading("Projection"))
		fmt.Fprintf(w, "Year | GDP       | Projected | Worst     | Best      | Infl | Proj Infl | GDP/cap k\n")
		fmt.Fprintf(w, "____ | _________ | _________ | _________ | _________ | ____ | _________ | _________\n")
		for _, row := range result.Rows {
			_, _ = p.Fprintf(w, "%d | %9.2f | %9.2f | %9.2f | %9.2f | %4.2f | %9.2f | %9.3f\n",
				row.Year, row.GDP, row.ProjectedGDP, row.GDPWorst, row.GDPBest,
				row.Inflation, row.ProjectedInflation, row.ProjectedPerCapitaK)
		}

		fmt.Fprintf(w, "\n%s\n", heading("Latest year: baseline vs projected"))
		for _, c := range result.Comparison {
			_, _ = p.Fprintf(w, "%-20s | %10.2f | %10.2f | %+.2f%%\n",
				c.Metric, c.Baseline, c.Projected, c.ChangePct)
		}

		fmt.Fprintf(w, "\n%s\n", heading("Yield curve"))
		for _, tenor := range result.Metrics.YieldCurve {
			fmt.Fprintf(w, "%-4s | base %.2f%% | projected %.2f%%\n",
				tenor.Tenor, tenor.BaseYield, tenor.ProjectedYield)
		}

		fmt.Fprintf(w, "\n%s\n", heading("Insights"))
		for _, insight := range result.Insights {
			fmt.Fprintf(w, "- %s\n", insight)
		}

		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat writes the projection rows in comma-separated value format
// with a header row. Numeric fields keep full precision.
func CsvFormat(w io.Writer, rows []projection.Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			formatFloat(row.GDP),
			formatFloat(row.ProjectedGDP),
			formatFloat(row.GDPBest),
			formatFloat(row.GDPWorst),
			formatFloat(row.Inflation),
			formatFloat(row.ProjectedInflation),
			formatFloat(row.PopulationM),
			formatFloat(row.GDPPerCapitaK),
			formatFloat(row.ProjectedPerCapitaK),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for year %d: %w", row.Year, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCsv parses rows previously written by CsvFormat.
func ReadCsv(r io.Reader) ([]projection.Row, error) {
	reader := csv.NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if len(records[0]) != len(csvHeader) {
		return nil, fmt.Errorf("CSV header has %d columns, expected %d", len(records[0]), len(csvHeader))
	}

	rows := make([]projection.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		year, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid year in CSV row %d: %w", i+1, err)
		}

		values := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q in CSV row %d: %w", field, i+1, err)
			}
			values[j] = value
		}

		rows = append(rows, projection.Row{
			Year:                year,
			GDP:                 values[0],
			ProjectedGDP:        values[1],
			GDPBest:             values[2],
			GDPWorst:            values[3],
			Inflation:           values[4],
			ProjectedInflation:  values[5],
			PopulationM:         values[6],
			GDPPerCapitaK:       values[7],
			ProjectedPerCapitaK: values[8],
		})
	}
	return rows, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
