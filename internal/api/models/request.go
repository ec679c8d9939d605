package models

import "runway-analyzer/internal/engine"

// AnalyzeRequest is the request body for running a full analysis. Required
// fields use pointers so that a legitimate zero (e.g. zero revenue) is
// distinguishable from an omitted field.
type AnalyzeRequest struct {
	CashOnHand           *float64 `json:"cash_on_hand" binding:"required,gt=0"`
	MonthlyRevenue       *float64 `json:"monthly_revenue" binding:"required,gte=0"`
	MonthlyFixedCosts    *float64 `json:"monthly_fixed_costs" binding:"required,gte=0"`
	MonthlyVariableCosts *float64 `json:"monthly_variable_costs" binding:"required,gte=0"`
	TeamSize             *int     `json:"team_size" binding:"required,gte=0"`
	AvgCostPerEmployee   *float64 `json:"avg_fully_loaded_cost_per_employee" binding:"required,gte=0"`
	RevenueGrowthRateMoM *float64 `json:"revenue_growth_rate_mom" binding:"required,gte=-0.5,lte=2.0"`

	PlannedHires   *int `json:"planned_hires,omitempty" binding:"omitempty,gte=0"`
	Months         *int `json:"months,omitempty" binding:"omitempty,gte=6,lte=36"`
	MonteCarloRuns *int `json:"monte_carlo_runs,omitempty" binding:"omitempty,gte=1000,lte=50000"`

	// Seed makes the Monte Carlo estimator reproducible. 0 (the default)
	// seeds from the clock.
	Seed int64 `json:"seed,omitempty"`
}

// Inputs converts the validated request into the engine's value object.
func (r AnalyzeRequest) Inputs() engine.Inputs {
	in := engine.Inputs{
		CashOnHand:           *r.CashOnHand,
		MonthlyRevenue:       *r.MonthlyRevenue,
		MonthlyFixedCosts:    *r.MonthlyFixedCosts,
		MonthlyVariableCosts: *r.MonthlyVariableCosts,
		TeamSize:             *r.TeamSize,
		AvgCostPerEmployee:   *r.AvgCostPerEmployee,
		RevenueGrowthRateMoM: *r.RevenueGrowthRateMoM,
	}
	if r.PlannedHires != nil {
		in.PlannedHires = *r.PlannedHires
	}
	return in
}

// MonthsOr returns the requested horizon or the given default.
func (r AnalyzeRequest) MonthsOr(def int) int {
	if r.Months != nil {
		return *r.Months
	}
	return def
}

// RunsOr returns the requested Monte Carlo run count or the given default.
func (r AnalyzeRequest) RunsOr(def int) int {
	if r.MonteCarloRuns != nil {
		return *r.MonteCarloRuns
	}
	return def
}

// ScenariosRequest is the request body for the scenario-curves endpoint.
// Same input fields, no Monte Carlo parameters.
type ScenariosRequest struct {
	CashOnHand           *float64 `json:"cash_on_hand" binding:"required,gt=0"`
	MonthlyRevenue       *float64 `json:"monthly_revenue" binding:"required,gte=0"`
	MonthlyFixedCosts    *float64 `json:"monthly_fixed_costs" binding:"required,gte=0"`
	MonthlyVariableCosts *float64 `json:"monthly_variable_costs" binding:"required,gte=0"`
	TeamSize             *int     `json:"team_size" binding:"required,gte=0"`
	AvgCostPerEmployee   *float64 `json:"avg_fully_loaded_cost_per_employee" binding:"required,gte=0"`
	RevenueGrowthRateMoM *float64 `json:"revenue_growth_rate_mom" binding:"required,gte=-0.5,lte=2.0"`

	PlannedHires *int `json:"planned_hires,omitempty" binding:"omitempty,gte=0"`
	Months       *int `json:"months,omitempty" binding:"omitempty,gte=6,lte=36"`
}

func (r ScenariosRequest) Inputs() engine.Inputs {
	in := engine.Inputs{
		CashOnHand:           *r.CashOnHand,
		MonthlyRevenue:       *r.MonthlyRevenue,
		MonthlyFixedCosts:    *r.MonthlyFixedCosts,
		MonthlyVariableCosts: *r.MonthlyVariableCosts,
		TeamSize:             *r.TeamSize,
		AvgCostPerEmployee:   *r.AvgCostPerEmployee,
		RevenueGrowthRateMoM: *r.RevenueGrowthRateMoM,
	}
	if r.PlannedHires != nil {
		in.PlannedHires = *r.PlannedHires
	}
	return in
}

func (r ScenariosRequest) MonthsOr(def int) int {
	if r.Months != nil {
		return *r.Months
	}
	return def
}
