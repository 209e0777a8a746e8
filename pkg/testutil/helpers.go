// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/bhum/policy-pulse/internal/simulation"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []simulation.Result, name string) *simulation.Result {
	for i := range results {
		if results[i].Scenario == name {
			return &results[i]
		}
	}
	return nil
}
