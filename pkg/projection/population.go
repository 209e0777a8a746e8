package projection

import "math"

// PopulationPath compounds the base population (millions) by the annual
// growth rate over n years. The caller is responsible for a positive base;
// a non-positive base propagates into per-capita metrics as +Inf or NaN
// rather than being silently clamped.
func PopulationPath(baseMillions, growthPct float64, n int) []float64 {
	path := make([]float64, n)
	growth := 1 + growthPct/100
	for i := 0; i < n; i++ {
		path[i] = baseMillions * math.Pow(growth, float64(i))
	}
	return path
}

// PerCapitaThousands converts a GDP level in billions and a population in
// millions into per-capita output in thousands.
func PerCapitaThousands(gdpBillions, populationMillions float64) float64 {
	return gdpBillions / populationMillions * 1000
}
