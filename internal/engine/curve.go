package engine

// SimulateCashCurve projects a cash balance forward month by month under one
// growth/inflation pair. Each step subtracts (cost - revenue) from the running
// balance, then compounds revenue and cost for the next step. No floor is
// applied; cash may go arbitrarily negative.
//
// The returned curve has months+1 entries, index 0 being cash0.
func SimulateCashCurve(cash0, rev0, cost0, growthMoM, costInflMoM float64, months int) []float64 {
	cash, rev, cost := cash0, rev0, cost0

	curve := make([]float64, 0, months+1)
	curve = append(curve, cash)

	for m := 0; m < months; m++ {
		cash -= cost - rev
		curve = append(curve, cash)
		rev *= 1 + growthMoM
		cost *= 1 + costInflMoM
	}
	return curve
}
