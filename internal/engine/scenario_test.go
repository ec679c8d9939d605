package engine

import (
	"math"
	"testing"
)

func TestScenarioAnalysis_OrderAndShape(t *testing.T) {
	scenarios := ScenarioAnalysis(baseInputs(), 12)

	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
	wantOrder := []string{ScenarioOptimistic, ScenarioBase, ScenarioPessimistic}
	for i, name := range wantOrder {
		if scenarios[i].Name != name {
			t.Errorf("scenario[%d].Name = %q, want %q", i, scenarios[i].Name, name)
		}
		if len(scenarios[i].CashCurve) != 13 {
			t.Errorf("scenario %q curve length = %d, want 13", name, len(scenarios[i].CashCurve))
		}
	}
}

func TestScenarioAnalysis_Multipliers(t *testing.T) {
	in := baseInputs()
	scenarios := ScenarioAnalysis(in, 6)
	g := in.RevenueGrowthRateMoM

	checks := []struct {
		growth, inflation float64
	}{
		{g * 1.25, 0.01},
		{g, 0.02},
		{g * 0.60, 0.04},
	}
	for i, want := range checks {
		if math.Abs(scenarios[i].GrowthMoM-want.growth) > 1e-12 {
			t.Errorf("scenario[%d].GrowthMoM = %v, want %v", i, scenarios[i].GrowthMoM, want.growth)
		}
		if scenarios[i].CostInflationMoM != want.inflation {
			t.Errorf("scenario[%d].CostInflationMoM = %v, want %v", i, scenarios[i].CostInflationMoM, want.inflation)
		}
	}
}

func TestScenarioAnalysis_Derived(t *testing.T) {
	for _, sc := range ScenarioAnalysis(baseInputs(), 12) {
		curve := sc.CashCurve
		if sc.CashEnd != curve[len(curve)-1] {
			t.Errorf("%s: CashEnd = %v, want last curve point %v", sc.Name, sc.CashEnd, curve[len(curve)-1])
		}
		min := curve[0]
		for _, c := range curve {
			if c < min {
				min = c
			}
		}
		if sc.MinCash != min {
			t.Errorf("%s: MinCash = %v, want %v", sc.Name, sc.MinCash, min)
		}
		if sc.GoesNegative != (min < 0) {
			t.Errorf("%s: GoesNegative = %v, min cash %v", sc.Name, sc.GoesNegative, min)
		}
	}
}

func TestScenarioAnalysis_IncludesPlannedHires(t *testing.T) {
	in := baseInputs()
	with := ScenarioAnalysis(in.WithPlannedHires(5), 6)
	without := ScenarioAnalysis(in, 6)

	// Five extra hires burn 50k more in month one under every scenario.
	for i := range with {
		diff := without[i].CashCurve[1] - with[i].CashCurve[1]
		if math.Abs(diff-50_000) > 1e-6 {
			t.Errorf("%s: month-1 cash diff = %v, want 50000", with[i].Name, diff)
		}
	}
}
