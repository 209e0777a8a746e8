package projection

import (
	"fmt"

	"github.com/bhum/policy-pulse/pkg/history"
)

// Row is the full per-year projection output.
type Row struct {
	Year                int     `json:"year"`
	GDP                 float64 `json:"gdp"`
	ProjectedGDP        float64 `json:"projectedGdp"`
	GDPBest             float64 `json:"gdpBest"`
	GDPWorst            float64 `json:"gdpWorst"`
	Inflation           float64 `json:"inflation"`
	ProjectedInflation  float64 `json:"projectedInflation"`
	PopulationM         float64 `json:"populationMillions"`
	GDPPerCapitaK       float64 `json:"gdpPerCapitaK"`
	ProjectedPerCapitaK float64 `json:"projectedGdpPerCapitaK"`
}

// Project runs the shock response model, band estimator, and per-capita
// normalization over the whole historical series, producing one Row per
// year. The same shock applies to every year; volatility is estimated once
// from the full GDP history.
func Project(series history.Series, ctx BaselineContext, shock PolicyShock, coeff Coefficients) ([]Row, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot project an empty historical series")
	}

	effects := ShockEffects(shock, coeff)
	volatility := Volatility(series.GDPValues())
	population := PopulationPath(ctx.PopulationM, ctx.PopulationGrowth, len(series))

	rows := make([]Row, len(series))
	for i, p := range series {
		projected := ProjectGDP(p.GDP, effects.CombinedPct)
		best, worst := BandAround(projected, Band(p.GDP, volatility, shock))

		rows[i] = Row{
			Year:                p.Year,
			GDP:                 p.GDP,
			ProjectedGDP:        projected,
			GDPBest:             best,
			GDPWorst:            worst,
			Inflation:           p.Inflation,
			ProjectedInflation:  ProjectInflation(p.Inflation, shock.InflationChange),
			PopulationM:         population[i],
			GDPPerCapitaK:       PerCapitaThousands(p.GDP, population[i]),
			ProjectedPerCapitaK: PerCapitaThousands(projected, population[i]),
		}
	}
	return rows, nil
}
