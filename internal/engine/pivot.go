package engine

import (
	"fmt"
	"math"
)

// PivotAssessment is a bounded 0-100 pressure-to-pivot score with the
// reasons that pushed it up.
type PivotAssessment struct {
	Score   float64
	Reasons []string
}

// Heuristic weights and trigger thresholds for the pivot score.
// These are business rules kept as literal constants.
const (
	weightRisk6Months = 60.0
	weightRiskHorizon = 25.0
	weightBurnRatio   = 15.0
	burnRatioScoreCap = 25.0
	bonusLowBreakEven = 10.0
	bonusLowGrowth    = 8.0

	thresholdRisk6Months = 0.4
	thresholdRiskHorizon = 0.5
	thresholdBurnRatio   = 0.5
	thresholdBreakEven   = 0.25
	thresholdLowGrowth   = 0.03
)

// PivotScore combines the Monte Carlo probabilities and the burn ratio into a
// 0-100 score. Reason order follows the term order below; the conditions are
// independent and may co-trigger. An empty reason list is replaced by a single
// default reason.
func PivotScore(in Inputs, risk RiskSummary, metrics Metrics) PivotAssessment {
	p6 := risk.PNegativeWithin6Months
	pHorizon := risk.PNegativeWithinHorizon
	pBreakEven := risk.PBreakEvenWithinHorizon

	burnRatio := 0.0
	if in.MonthlyRevenue > 0 {
		burnRatio = math.Max(0, metrics.NetBurn/in.MonthlyRevenue)
	}

	score := 0.0
	var reasons []string

	score += weightRisk6Months * p6
	if p6 > thresholdRisk6Months {
		reasons = append(reasons, fmt.Sprintf("High risk: probability of running out of cash within 6 months is %.0f%%.", p6*100))
	}

	score += weightRiskHorizon * pHorizon
	if pHorizon > thresholdRiskHorizon {
		reasons = append(reasons, fmt.Sprintf("Longer-horizon risk: probability of cash going negative within the horizon is %.0f%%.", pHorizon*100))
	}

	score += math.Min(burnRatioScoreCap, weightBurnRatio*burnRatio)
	if burnRatio > thresholdBurnRatio {
		reasons = append(reasons, fmt.Sprintf("Burn is high vs revenue: net burn is %.2fx monthly revenue.", burnRatio))
	}

	if pBreakEven < thresholdBreakEven {
		score += bonusLowBreakEven
		reasons = append(reasons, fmt.Sprintf("Low break-even probability within horizon: %.0f%%.", pBreakEven*100))
	}

	if in.RevenueGrowthRateMoM < thresholdLowGrowth {
		score += bonusLowGrowth
		reasons = append(reasons, "Growth is low (<3% MoM), reaching break-even may require changes.")
	}

	score = math.Min(100, score)

	if len(reasons) == 0 {
		reasons = append(reasons, "Pivot pressure is moderate/low given current assumptions.")
	}

	return PivotAssessment{Score: score, Reasons: reasons}
}
