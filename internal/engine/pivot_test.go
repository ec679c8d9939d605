package engine

import (
	"strings"
	"testing"
)

func TestPivotScore_Bounds(t *testing.T) {
	in := baseInputs()
	metrics := BurnAndRunway(in)

	cases := []RiskSummary{
		{},
		{PNegativeWithinHorizon: 1, PNegativeWithin6Months: 1, PNegativeWithin3Months: 1},
		{PNegativeWithinHorizon: 0.5, PNegativeWithin6Months: 0.3, PBreakEvenWithinHorizon: 0.9},
	}
	for _, risk := range cases {
		got := PivotScore(in, risk, metrics)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("score %v outside [0,100] for risk %+v", got.Score, risk)
		}
		if len(got.Reasons) == 0 {
			t.Errorf("reasons empty for risk %+v", risk)
		}
	}
}

func TestPivotScore_ClampsAt100(t *testing.T) {
	// Everything maxed out: 60 + 25 + 25 + 10 + 8 > 100.
	in := baseInputs()
	in.MonthlyRevenue = 10_000
	in.RevenueGrowthRateMoM = 0.01
	metrics := BurnAndRunway(in)

	risk := RiskSummary{
		PNegativeWithinHorizon: 1,
		PNegativeWithin6Months: 1,
	}
	got := PivotScore(in, risk, metrics)
	if got.Score != 100 {
		t.Errorf("score = %v, want clamp at 100", got.Score)
	}
}

func TestPivotScore_MonotoneInSixMonthRisk(t *testing.T) {
	in := baseInputs()
	metrics := BurnAndRunway(in)

	prev := -1.0
	for _, p6 := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		risk := RiskSummary{PNegativeWithin6Months: p6, PBreakEvenWithinHorizon: 0.9}
		got := PivotScore(in, risk, metrics)
		if got.Score < prev {
			t.Errorf("score decreased to %v at p6=%v", got.Score, p6)
		}
		prev = got.Score
	}
}

func TestPivotScore_ReasonOrder(t *testing.T) {
	// Trigger every reason at once.
	in := baseInputs()
	in.MonthlyRevenue = 10_000
	in.RevenueGrowthRateMoM = 0.01
	metrics := BurnAndRunway(in)

	risk := RiskSummary{
		PNegativeWithinHorizon: 0.9,
		PNegativeWithin6Months: 0.8,
		PNegativeWithin3Months: 0.5,
	}
	got := PivotScore(in, risk, metrics)

	if len(got.Reasons) != 5 {
		t.Fatalf("got %d reasons, want 5: %v", len(got.Reasons), got.Reasons)
	}
	wantPrefixes := []string{
		"High risk:",
		"Longer-horizon risk:",
		"Burn is high vs revenue:",
		"Low break-even probability",
		"Growth is low",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(got.Reasons[i], prefix) {
			t.Errorf("reason[%d] = %q, want prefix %q", i, got.Reasons[i], prefix)
		}
	}
}

func TestPivotScore_DefaultReason(t *testing.T) {
	// Healthy snapshot: nothing triggers.
	in := baseInputs()
	in.MonthlyRevenue = 115_000 // small burn, burn ratio ~0.04
	metrics := BurnAndRunway(in)

	risk := RiskSummary{PBreakEvenWithinHorizon: 0.9}
	got := PivotScore(in, risk, metrics)

	if len(got.Reasons) != 1 {
		t.Fatalf("got %d reasons, want the single default: %v", len(got.Reasons), got.Reasons)
	}
	if !strings.Contains(got.Reasons[0], "moderate/low") {
		t.Errorf("default reason = %q", got.Reasons[0])
	}
}

func TestPivotScore_ZeroRevenueBurnRatio(t *testing.T) {
	// Zero revenue means the burn ratio term contributes nothing.
	in := baseInputs()
	in.MonthlyRevenue = 0
	metrics := BurnAndRunway(in)

	risk := RiskSummary{PBreakEvenWithinHorizon: 0.9}
	got := PivotScore(in, risk, metrics)
	if got.Score != 0 {
		t.Errorf("score = %v, want 0 with zero revenue and no risk", got.Score)
	}
}
