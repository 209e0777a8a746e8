// Package stats provides statistical helpers over macro time series.
package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Diff returns the consecutive differences of a series.
// Diff[i] = data[i+1] - data[i]; fewer than 2 points yields an empty slice.
func Diff(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}

	diffs := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		diffs[i-1] = data[i] - data[i-1]
	}
	return diffs
}
