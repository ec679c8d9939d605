package engine

// Scenario is one named growth/inflation assumption pair with its projection.
type Scenario struct {
	Name             string
	GrowthMoM        float64
	CostInflationMoM float64
	CashCurve        []float64
	CashEnd          float64
	MinCash          float64
	GoesNegative     bool
}

// Scenario names, in the order ScenarioAnalysis returns them. The order is a
// contract observed by callers.
const (
	ScenarioOptimistic  = "optimistic"
	ScenarioBase        = "base"
	ScenarioPessimistic = "pessimistic"
)

var scenarioTable = []struct {
	name       string
	growthMult float64
	inflation  float64
}{
	{ScenarioOptimistic, 1.25, 0.01},
	{ScenarioBase, 1.00, 0.02},
	{ScenarioPessimistic, 0.60, 0.04},
}

// ScenarioAnalysis projects the cash curve under the three fixed scenarios.
// Monthly cost is computed once up front and includes planned hires.
func ScenarioAnalysis(in Inputs, months int) []Scenario {
	baseCost := MonthlyTotalCost(in)
	g := in.RevenueGrowthRateMoM

	out := make([]Scenario, 0, len(scenarioTable))
	for _, sc := range scenarioTable {
		growth := g * sc.growthMult
		curve := SimulateCashCurve(in.CashOnHand, in.MonthlyRevenue, baseCost, growth, sc.inflation, months)

		// Min over the full curve, starting point included.
		minCash := curve[0]
		for _, c := range curve[1:] {
			if c < minCash {
				minCash = c
			}
		}

		out = append(out, Scenario{
			Name:             sc.name,
			GrowthMoM:        growth,
			CostInflationMoM: sc.inflation,
			CashCurve:        curve,
			CashEnd:          curve[len(curve)-1],
			MinCash:          minCash,
			GoesNegative:     minCash < 0,
		})
	}
	return out
}
