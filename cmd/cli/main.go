package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"runway-analyzer/internal/api/models"
	"runway-analyzer/internal/engine"
)

var (
	flagCash      float64
	flagRevenue   float64
	flagFixed     float64
	flagVariable  float64
	flagTeamSize  int
	flagAvgCost   float64
	flagGrowth    float64
	flagHires     int
	flagMonths    int
	flagRuns      int
	flagSeed      int64
	flagJSON      bool
	flagCurvesOut string
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Startup cash runway analyzer",
	Long:  "Estimate burn rate, runway, insolvency risk, safe hiring levels, and revenue targets from a financial snapshot.",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis and print a report",
	RunE:  runAnalyze,
}

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Write the three scenario cash curves as CSV",
	RunE:  runCurves,
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, curvesCmd} {
		c.Flags().Float64Var(&flagCash, "cash", 0, "Cash on hand")
		c.Flags().Float64Var(&flagRevenue, "revenue", 0, "Monthly revenue")
		c.Flags().Float64Var(&flagFixed, "fixed-costs", 0, "Monthly fixed costs")
		c.Flags().Float64Var(&flagVariable, "variable-costs", 0, "Monthly variable costs")
		c.Flags().IntVar(&flagTeamSize, "team-size", 0, "Current team size")
		c.Flags().Float64Var(&flagAvgCost, "avg-cost", 0, "Fully loaded monthly cost per employee")
		c.Flags().Float64Var(&flagGrowth, "growth", 0, "Revenue growth rate MoM (e.g. 0.08)")
		c.Flags().IntVar(&flagHires, "hires", 0, "Planned hires")
		c.Flags().IntVar(&flagMonths, "months", engine.DefaultMonths, "Projection horizon in months")
		_ = c.MarkFlagRequired("cash")
	}
	analyzeCmd.Flags().IntVar(&flagRuns, "runs", engine.DefaultRuns, "Monte Carlo run count")
	analyzeCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = non-reproducible)")
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the raw JSON record")
	curvesCmd.Flags().StringVar(&flagCurvesOut, "out", "results/curves.csv", "Output CSV path")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(curvesCmd)
}

func inputsFromFlags() engine.Inputs {
	return engine.Inputs{
		CashOnHand:           flagCash,
		MonthlyRevenue:       flagRevenue,
		MonthlyFixedCosts:    flagFixed,
		MonthlyVariableCosts: flagVariable,
		TeamSize:             flagTeamSize,
		PlannedHires:         flagHires,
		AvgCostPerEmployee:   flagAvgCost,
		RevenueGrowthRateMoM: flagGrowth,
	}
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	in := inputsFromFlags()
	analysis := engine.FullAnalysis(in, flagMonths, flagRuns, engine.NewRNG(flagSeed))

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models.NewAnalyzeResponse(analysis))
	}

	printReport(analysis, flagMonths)
	return nil
}

func runCurves(_ *cobra.Command, _ []string) error {
	scenarios := engine.ScenarioAnalysis(inputsFromFlags(), flagMonths)

	if dir := filepath.Dir(flagCurvesOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := engine.WriteCurvesCSV(flagCurvesOut, scenarios); err != nil {
		return err
	}
	fmt.Printf("Wrote %d-month curves for %d scenarios to %s\n", flagMonths, len(scenarios), flagCurvesOut)
	return nil
}

func printReport(a engine.Analysis, months int) {
	m := a.CurrentMetrics
	fmt.Println()
	fmt.Println("  Current metrics")
	fmt.Printf("    Monthly cost     %s\n", money(m.MonthlyCost))
	fmt.Printf("    Net burn         %s\n", money(m.NetBurn))
	fmt.Printf("    Runway           %s\n", m.Runway)
	fmt.Println()

	fmt.Printf("  Scenarios (%d months)\n", months)
	for _, sc := range a.Scenarios {
		marker := ""
		if sc.GoesNegative {
			marker = "  [goes negative]"
		}
		fmt.Printf("    %-11s end %s, min %s%s\n", sc.Name, money(sc.CashEnd), money(sc.MinCash), marker)
	}
	fmt.Println()

	r := a.MonteCarlo
	fmt.Printf("  Risk (%d runs)\n", r.Runs)
	fmt.Printf("    P(cash negative, horizon)   %5.1f%%\n", r.PNegativeWithinHorizon*100)
	fmt.Printf("    P(cash negative, 6 months)  %5.1f%%\n", r.PNegativeWithin6Months*100)
	fmt.Printf("    P(cash negative, 3 months)  %5.1f%%\n", r.PNegativeWithin3Months*100)
	fmt.Printf("    P(break-even, horizon)      %5.1f%%\n", r.PBreakEvenWithinHorizon*100)
	fmt.Println()

	h := a.HiringSuggestion
	runway := "unknown"
	if h.RunwayKnown {
		runway = h.ResultingRunway.String()
	}
	fmt.Println("  Hiring")
	fmt.Printf("    Safe hires now   %d (runway %s, floor %.1f months)\n", h.SafeHiresNow, runway, h.MinRequiredRunwayMonths)
	fmt.Println()

	s := a.RevenueSensitivity
	fmt.Println("  Revenue")
	fmt.Printf("    Status           %s\n", s.Status)
	fmt.Printf("    Break-even at    %s/month\n", money(s.RevenueNeededForBreakEven))
	fmt.Printf("    Extra for %.0f-month runway: %s/month\n", s.TargetRunwayMonths, money(s.ExtraMonthlyRevenueNeeded))
	fmt.Println()

	fmt.Printf("  Pivot pressure   %.0f / 100\n", a.Pivot.Score)
	for _, reason := range a.Pivot.Reasons {
		fmt.Printf("    - %s\n", reason)
	}
	fmt.Println()
}

func money(x float64) string {
	if x < 0 {
		return fmt.Sprintf("-$%.0f", -x)
	}
	return fmt.Sprintf("$%.0f", x)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
