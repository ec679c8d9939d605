package engine

import "math"

// Status values reported by RevenueSensitivityFor.
const (
	StatusBreakEven   = "Already break-even/profitable"
	StatusBurningCash = "Burning cash"
)

// RevenueSensitivity reports how much extra monthly revenue would be needed
// to reach a target runway, plus the revenue level at which burn is zero.
type RevenueSensitivity struct {
	TargetRunwayMonths        float64
	ExtraMonthlyRevenueNeeded float64
	RevenueNeededForBreakEven float64
	Status                    string
}

// RevenueSensitivityFor computes the revenue gap to the target runway.
// RevenueNeededForBreakEven is always the current monthly cost.
func RevenueSensitivityFor(in Inputs, targetRunwayMonths float64) RevenueSensitivity {
	cost := MonthlyTotalCost(in)
	netBurn := cost - in.MonthlyRevenue

	out := RevenueSensitivity{
		TargetRunwayMonths:        targetRunwayMonths,
		RevenueNeededForBreakEven: cost,
	}
	if netBurn <= 0 {
		out.Status = StatusBreakEven
		return out
	}

	// Net burn that would exactly yield the target runway.
	burnTarget := in.CashOnHand / targetRunwayMonths
	out.ExtraMonthlyRevenueNeeded = math.Max(0, netBurn-burnTarget)
	out.Status = StatusBurningCash
	return out
}
