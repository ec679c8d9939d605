package engine

import (
	"math"
	"testing"
)

func baseInputs() Inputs {
	return Inputs{
		CashOnHand:           1_200_000,
		MonthlyRevenue:       100_000,
		MonthlyFixedCosts:    50_000,
		MonthlyVariableCosts: 20_000,
		TeamSize:             5,
		AvgCostPerEmployee:   10_000,
		RevenueGrowthRateMoM: 0.05,
	}
}

func TestMonthlyTotalCost(t *testing.T) {
	in := baseInputs()
	if got := MonthlyTotalCost(in); got != 120_000 {
		t.Fatalf("MonthlyTotalCost = %.2f, want 120000", got)
	}

	// Planned hires are part of payroll.
	in = in.WithPlannedHires(3)
	if got := MonthlyTotalCost(in); got != 150_000 {
		t.Fatalf("MonthlyTotalCost with 3 hires = %.2f, want 150000", got)
	}
}

func TestBurnAndRunway_Burning(t *testing.T) {
	m := BurnAndRunway(baseInputs())

	if m.MonthlyCost != 120_000 {
		t.Errorf("MonthlyCost = %.2f, want 120000", m.MonthlyCost)
	}
	if m.NetBurn != 20_000 {
		t.Errorf("NetBurn = %.2f, want 20000", m.NetBurn)
	}
	if m.Runway.Infinite() {
		t.Fatal("runway should be finite when burning cash")
	}
	if got := m.Runway.Numeric(); math.Abs(got-60.0) > 1e-9 {
		t.Errorf("Runway.Numeric = %v, want 60.0", got)
	}
}

func TestBurnAndRunway_BreakEvenIsInfinite(t *testing.T) {
	in := baseInputs()
	in.MonthlyRevenue = 120_000 // exactly break-even

	m := BurnAndRunway(in)
	if !m.Runway.Infinite() {
		t.Fatal("runway should be infinite at break-even")
	}
	if got := m.Runway.Numeric(); got != -1 {
		t.Errorf("Runway.Numeric = %v, want -1 for infinite", got)
	}

	in.MonthlyRevenue = 500_000 // profitable
	if m := BurnAndRunway(in); !m.Runway.Infinite() {
		t.Fatal("runway should be infinite when profitable")
	}
}

func TestBurnAndRunway_ExactDivision(t *testing.T) {
	in := baseInputs()
	in.CashOnHand = 70_000
	in.MonthlyRevenue = 80_000 // burn = 40k

	m := BurnAndRunway(in)
	want := in.CashOnHand / m.NetBurn
	if got := m.Runway.Months(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Runway.Months = %v, want %v", got, want)
	}
}

func TestWithPlannedHiresDoesNotMutate(t *testing.T) {
	in := baseInputs()
	derived := in.WithPlannedHires(7)

	if in.PlannedHires != 0 {
		t.Errorf("original PlannedHires mutated to %d", in.PlannedHires)
	}
	if derived.PlannedHires != 7 {
		t.Errorf("derived PlannedHires = %d, want 7", derived.PlannedHires)
	}
}

func TestRunwayString(t *testing.T) {
	if got := InfiniteRunway().String(); got != "infinite (profitable or break-even)" {
		t.Errorf("infinite String = %q", got)
	}
	if got := FiniteRunway(7.5).String(); got != "7.5 months" {
		t.Errorf("finite String = %q", got)
	}
}
