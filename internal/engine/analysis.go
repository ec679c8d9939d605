// Package engine implements the runway analysis core: burn/runway arithmetic,
// multi-scenario cash projection, Monte Carlo insolvency risk, the safe-hires
// search, revenue sensitivity, and the pivot-pressure score. Every function is
// pure and stateless; callers validate preconditions at the boundary.
package engine

import "math/rand"

// Defaults and policy constants used by FullAnalysis. The hiring and revenue
// targets are fixed policy, independent of the projection horizon.
const (
	DefaultMonths = 12
	DefaultRuns   = 5000

	MinRequiredRunwayMonths = 9.0
	TargetRunwayMonths      = 12.0
)

// Analysis is the aggregate result for one input snapshot.
type Analysis struct {
	CurrentMetrics     Metrics
	Scenarios          []Scenario
	MonteCarlo         RiskSummary
	HiringSuggestion   HiringSuggestion
	RevenueSensitivity RevenueSensitivity
	Pivot              PivotAssessment
}

// FullAnalysis composes every calculator into one result. rng drives the
// Monte Carlo estimator; use NewRNG to build one.
func FullAnalysis(in Inputs, months, runs int, rng *rand.Rand) Analysis {
	metrics := BurnAndRunway(in)
	risk := MonteCarloRisk(in, months, runs, rng)

	return Analysis{
		CurrentMetrics:     metrics,
		Scenarios:          ScenarioAnalysis(in, months),
		MonteCarlo:         risk,
		HiringSuggestion:   SafeHiresSuggestion(in, MinRequiredRunwayMonths),
		RevenueSensitivity: RevenueSensitivityFor(in, TargetRunwayMonths),
		Pivot:              PivotScore(in, risk, metrics),
	}
}
