package engine

// Metrics holds the derived burn figures for one input snapshot.
type Metrics struct {
	MonthlyCost float64
	NetBurn     float64 // positive means cash is being consumed
	Runway      Runway
}

// MonthlyTotalCost is fixed + variable + payroll, where payroll covers the
// current team plus any planned hires.
func MonthlyTotalCost(in Inputs) float64 {
	payroll := float64(in.TeamSize+in.PlannedHires) * in.AvgCostPerEmployee
	return in.MonthlyFixedCosts + in.MonthlyVariableCosts + payroll
}

// BurnAndRunway derives net burn and runway from the snapshot.
// Runway is infinite at or below break-even; otherwise cash / net burn,
// fractional, with no upper clamp.
func BurnAndRunway(in Inputs) Metrics {
	cost := MonthlyTotalCost(in)
	burn := cost - in.MonthlyRevenue

	m := Metrics{MonthlyCost: cost, NetBurn: burn}
	if burn <= 0 {
		m.Runway = InfiniteRunway()
	} else {
		m.Runway = FiniteRunway(in.CashOnHand / burn)
	}
	return m
}
