package engine

import (
	"math/rand"
	"time"
)

// RiskSummary aggregates Monte Carlo outcomes as probabilities in [0,1].
type RiskSummary struct {
	Runs                    int
	PNegativeWithinHorizon  float64
	PNegativeWithin6Months  float64
	PNegativeWithin3Months  float64
	PBreakEvenWithinHorizon float64
}

// NewRNG returns a seeded random source for MonteCarloRisk. Seed 0 seeds from
// the clock (non-reproducible); any other value makes runs reproducible.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// MonteCarloRisk re-simulates the cash projection runs times, drawing growth
// from U(0.6g, 1.4g) and cost inflation from U(0, 0.06) per trial. Uniform
// sampling is a contract, not an implementation detail. Each trial tracks the
// first month the running cash drops below zero and whether revenue ever
// reaches cost within the horizon.
//
// runs must be >= 1; that is a caller precondition, not checked here.
func MonteCarloRisk(in Inputs, months, runs int, rng *rand.Rand) RiskSummary {
	baseCost := MonthlyTotalCost(in)
	baseGrowth := in.RevenueGrowthRateMoM

	var wentNegative, negWithin6, negWithin3, brokeEven int

	for i := 0; i < runs; i++ {
		g := uniform(rng, baseGrowth*0.6, baseGrowth*1.4)
		infl := uniform(rng, 0.0, 0.06)

		cash := in.CashOnHand
		rev := in.MonthlyRevenue
		cost := baseCost

		firstNeg := 0 // 1-based month index, 0 = never went negative
		hitBreakEven := false

		for m := 1; m <= months; m++ {
			cash -= cost - rev
			if firstNeg == 0 && cash < 0 {
				firstNeg = m
			}
			if !hitBreakEven && rev >= cost {
				hitBreakEven = true
			}
			rev *= 1 + g
			cost *= 1 + infl
		}

		if firstNeg > 0 {
			wentNegative++
			if firstNeg <= 6 {
				negWithin6++
			}
			if firstNeg <= 3 {
				negWithin3++
			}
		}
		if hitBreakEven {
			brokeEven++
		}
	}

	n := float64(runs)
	return RiskSummary{
		Runs:                    runs,
		PNegativeWithinHorizon:  float64(wentNegative) / n,
		PNegativeWithin6Months:  float64(negWithin6) / n,
		PNegativeWithin3Months:  float64(negWithin3) / n,
		PBreakEvenWithinHorizon: float64(brokeEven) / n,
	}
}
