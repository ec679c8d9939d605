package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"runway-analyzer/internal/config"
	"runway-analyzer/internal/engine"
)

// formValues holds the raw form inputs. huh works with strings; parsing
// happens in inputs() after validation has passed.
type formValues struct {
	cash     string
	revenue  string
	fixed    string
	variable string
	teamSize string
	avgCost  string
	growth   string
	hires    string
	months   string
	runs     string
	seed     string
}

func defaultFormValues() formValues {
	return formValues{
		cash:     "1000000",
		revenue:  "50000",
		fixed:    "30000",
		variable: "10000",
		teamSize: "5",
		avgCost:  "10000",
		growth:   "0.05",
		hires:    "0",
		months:   strconv.Itoa(engine.DefaultMonths),
		runs:     strconv.Itoa(engine.DefaultRuns),
		seed:     "0",
	}
}

func validateFloat(name string, min float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v < min {
			return fmt.Errorf("%s must be >= %g", name, min)
		}
		return nil
	}
}

func validateFloatRange(name string, min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v < min || v > max {
			return fmt.Errorf("%s must be in [%g, %g]", name, min, max)
		}
		return nil
	}
}

func validateIntRange(name string, min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s must be an integer", name)
		}
		if v < min || v > max {
			return fmt.Errorf("%s must be in [%d, %d]", name, min, max)
		}
		return nil
	}
}

func validateInt(name string) func(string) error {
	return func(s string) error {
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return fmt.Errorf("%s must be an integer", name)
		}
		return nil
	}
}

// newForm builds the input form. Validation mirrors the API boundary: the
// engine itself never sees out-of-range values.
func (v *formValues) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cash on hand").
				Value(&v.cash).
				Validate(validateFloat("cash on hand", 0.01)),
			huh.NewInput().
				Title("Monthly revenue").
				Value(&v.revenue).
				Validate(validateFloat("monthly revenue", 0)),
			huh.NewInput().
				Title("Monthly fixed costs").
				Value(&v.fixed).
				Validate(validateFloat("fixed costs", 0)),
			huh.NewInput().
				Title("Monthly variable costs").
				Value(&v.variable).
				Validate(validateFloat("variable costs", 0)),
		).Title("Finances"),
		huh.NewGroup(
			huh.NewInput().
				Title("Team size").
				Value(&v.teamSize).
				Validate(validateIntRange("team size", 0, 100000)),
			huh.NewInput().
				Title("Avg fully loaded cost per employee").
				Value(&v.avgCost).
				Validate(validateFloat("cost per employee", 0)),
			huh.NewInput().
				Title("Planned hires").
				Value(&v.hires).
				Validate(validateIntRange("planned hires", 0, 100000)),
			huh.NewInput().
				Title("Revenue growth rate MoM (e.g. 0.08)").
				Value(&v.growth).
				Validate(validateFloatRange("growth rate", -0.5, 2.0)),
		).Title("Team & growth"),
		huh.NewGroup(
			huh.NewInput().
				Title("Projection months").
				Value(&v.months).
				Validate(validateIntRange("months", config.MinMonths, config.MaxMonths)),
			huh.NewInput().
				Title("Monte Carlo runs").
				Value(&v.runs).
				Validate(validateIntRange("runs", config.MinRuns, config.MaxRuns)),
			huh.NewInput().
				Title("Seed (0 = random)").
				Value(&v.seed).
				Validate(validateInt("seed")),
		).Title("Simulation"),
	)
}

// inputs parses the validated form values.
func (v formValues) inputs() (engine.Inputs, int, int, int64) {
	f := func(s string) float64 {
		x, _ := strconv.ParseFloat(s, 64)
		return x
	}
	i := func(s string) int {
		x, _ := strconv.Atoi(s)
		return x
	}
	seed, _ := strconv.ParseInt(v.seed, 10, 64)

	in := engine.Inputs{
		CashOnHand:           f(v.cash),
		MonthlyRevenue:       f(v.revenue),
		MonthlyFixedCosts:    f(v.fixed),
		MonthlyVariableCosts: f(v.variable),
		TeamSize:             i(v.teamSize),
		PlannedHires:         i(v.hires),
		AvgCostPerEmployee:   f(v.avgCost),
		RevenueGrowthRateMoM: f(v.growth),
	}
	return in, i(v.months), i(v.runs), seed
}
