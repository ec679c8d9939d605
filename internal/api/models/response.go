package models

import "runway-analyzer/internal/engine"

// AnalyzeResponse is the aggregate analysis record. The sub-key names are the
// stable interface the core keeps for transport.
type AnalyzeResponse struct {
	CurrentMetrics     MetricsView     `json:"current_metrics"`
	Scenarios          []ScenarioView  `json:"scenarios"`
	MonteCarlo         RiskView        `json:"monte_carlo"`
	HiringSuggestion   HiringView      `json:"hiring_suggestion"`
	RevenueSensitivity SensitivityView `json:"revenue_sensitivity"`
	Pivot              PivotView       `json:"pivot"`
}

// MetricsView reports burn and runway. runway_months is a number when finite
// and a human-readable sentinel string when infinite; runway_months_numeric
// is always a number, with -1 encoding the infinite case.
type MetricsView struct {
	MonthlyCost         float64 `json:"monthly_cost"`
	NetBurn             float64 `json:"net_burn"`
	RunwayMonths        any     `json:"runway_months"`
	RunwayMonthsNumeric float64 `json:"runway_months_numeric"`
}

type ScenarioView struct {
	Name             string    `json:"name"`
	GrowthMoM        float64   `json:"growth_mom"`
	CostInflationMoM float64   `json:"cost_inflation_mom"`
	CashCurve        []float64 `json:"cash_curve"`
	CashEnd          float64   `json:"cash_end"`
	MinCash          float64   `json:"min_cash"`
	GoesNegative     bool      `json:"goes_negative"`
}

type RiskView struct {
	Runs                    int     `json:"runs"`
	PNegativeWithinHorizon  float64 `json:"p_cash_negative_within_horizon"`
	PNegativeWithin6Months  float64 `json:"p_cash_negative_within_6_months"`
	PNegativeWithin3Months  float64 `json:"p_cash_negative_within_3_months"`
	PBreakEvenWithinHorizon float64 `json:"p_break_even_within_horizon"`
}

// HiringView reports the safe-hires scan result. resulting_runway_months is
// "unknown" when no candidate met the threshold, "infinite" when runway is
// unbounded, and a number otherwise.
type HiringView struct {
	MinRequiredRunwayMonths float64 `json:"min_required_runway_months"`
	SafeHiresNow            int     `json:"safe_hires_now"`
	ResultingRunwayMonths   any     `json:"resulting_runway_months"`
}

type SensitivityView struct {
	TargetRunwayMonths        float64 `json:"target_runway_months"`
	ExtraMonthlyRevenueNeeded float64 `json:"extra_monthly_revenue_needed_for_target_runway"`
	RevenueNeededForBreakEven float64 `json:"monthly_revenue_needed_for_break_even"`
	Status                    string  `json:"status"`
}

type PivotView struct {
	PivotScore float64  `json:"pivot_score"`
	Reasons    []string `json:"reasons"`
}

// ScenariosResponse is the body of the scenario-curves endpoint.
type ScenariosResponse struct {
	Months    int            `json:"months"`
	Scenarios []ScenarioView `json:"scenarios"`
}

// PolicyResponse exposes the fixed policy defaults and validation limits so
// display clients can mirror them.
type PolicyResponse struct {
	MinRequiredRunwayMonths float64 `json:"min_required_runway_months"`
	TargetRunwayMonths      float64 `json:"target_runway_months"`
	DefaultMonths           int     `json:"default_months"`
	DefaultMonteCarloRuns   int     `json:"default_monte_carlo_runs"`
	MonthsRange             [2]int  `json:"months_range"`
	MonteCarloRunsRange     [2]int  `json:"monte_carlo_runs_range"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewAnalyzeResponse maps the engine aggregate onto the wire shape.
func NewAnalyzeResponse(a engine.Analysis) AnalyzeResponse {
	return AnalyzeResponse{
		CurrentMetrics:     NewMetricsView(a.CurrentMetrics),
		Scenarios:          NewScenarioViews(a.Scenarios),
		MonteCarlo:         RiskView(a.MonteCarlo),
		HiringSuggestion:   newHiringView(a.HiringSuggestion),
		RevenueSensitivity: SensitivityView(a.RevenueSensitivity),
		Pivot: PivotView{
			PivotScore: a.Pivot.Score,
			Reasons:    a.Pivot.Reasons,
		},
	}
}

func NewMetricsView(m engine.Metrics) MetricsView {
	v := MetricsView{
		MonthlyCost:         m.MonthlyCost,
		NetBurn:             m.NetBurn,
		RunwayMonthsNumeric: m.Runway.Numeric(),
	}
	if m.Runway.Infinite() {
		v.RunwayMonths = m.Runway.String()
	} else {
		v.RunwayMonths = m.Runway.Months()
	}
	return v
}

func NewScenarioViews(scenarios []engine.Scenario) []ScenarioView {
	out := make([]ScenarioView, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, ScenarioView(sc))
	}
	return out
}

func newHiringView(h engine.HiringSuggestion) HiringView {
	v := HiringView{
		MinRequiredRunwayMonths: h.MinRequiredRunwayMonths,
		SafeHiresNow:            h.SafeHiresNow,
	}
	switch {
	case !h.RunwayKnown:
		v.ResultingRunwayMonths = "unknown"
	case h.ResultingRunway.Infinite():
		v.ResultingRunwayMonths = "infinite"
	default:
		v.ResultingRunwayMonths = h.ResultingRunway.Months()
	}
	return v
}
