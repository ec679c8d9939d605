package engine

import (
	"math"
	"testing"
)

func TestFullAnalysis_EndToEnd(t *testing.T) {
	got := FullAnalysis(baseInputs(), 12, 2000, NewRNG(42))

	if got.CurrentMetrics.MonthlyCost != 120_000 {
		t.Errorf("MonthlyCost = %v, want 120000", got.CurrentMetrics.MonthlyCost)
	}
	if got.CurrentMetrics.NetBurn != 20_000 {
		t.Errorf("NetBurn = %v, want 20000", got.CurrentMetrics.NetBurn)
	}
	if r := got.CurrentMetrics.Runway.Numeric(); math.Abs(r-60.0) > 1e-9 {
		t.Errorf("Runway.Numeric = %v, want 60.0", r)
	}

	if len(got.Scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(got.Scenarios))
	}
	if got.MonteCarlo.Runs != 2000 {
		t.Errorf("MonteCarlo.Runs = %d, want 2000", got.MonteCarlo.Runs)
	}
	if got.HiringSuggestion.MinRequiredRunwayMonths != 9.0 {
		t.Errorf("hiring policy = %v, want 9.0", got.HiringSuggestion.MinRequiredRunwayMonths)
	}
	if got.RevenueSensitivity.TargetRunwayMonths != 12.0 {
		t.Errorf("sensitivity target = %v, want 12.0", got.RevenueSensitivity.TargetRunwayMonths)
	}
	if got.Pivot.Score < 0 || got.Pivot.Score > 100 {
		t.Errorf("pivot score %v outside [0,100]", got.Pivot.Score)
	}
	if len(got.Pivot.Reasons) == 0 {
		t.Error("pivot reasons empty")
	}
}

func TestFullAnalysis_DeterministicUnderSeed(t *testing.T) {
	in := baseInputs()

	a := FullAnalysis(in, 12, 300, NewRNG(11))
	b := FullAnalysis(in, 12, 300, NewRNG(11))

	if a.MonteCarlo != b.MonteCarlo {
		t.Errorf("Monte Carlo differs under same seed:\n%+v\n%+v", a.MonteCarlo, b.MonteCarlo)
	}
	if a.Pivot.Score != b.Pivot.Score {
		t.Errorf("pivot score differs under same seed: %v vs %v", a.Pivot.Score, b.Pivot.Score)
	}
}
