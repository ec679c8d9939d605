package engine

// Inputs is the financial snapshot the analyzer works from.
// All money fields share one currency unit; monthly figures are per month.
type Inputs struct {
	CashOnHand           float64
	MonthlyRevenue       float64
	MonthlyFixedCosts    float64
	MonthlyVariableCosts float64
	TeamSize             int
	PlannedHires         int
	AvgCostPerEmployee   float64 // fully loaded, per employee per month
	RevenueGrowthRateMoM float64 // fractional, e.g. 0.08 for 8% MoM
}

// WithPlannedHires returns a copy with a different hire count.
// Inputs are value objects; derived variants are new copies, never patched.
func (in Inputs) WithPlannedHires(n int) Inputs {
	in.PlannedHires = n
	return in
}
