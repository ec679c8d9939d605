// Package tui provides the interactive Bubble Tea dashboard: an input form
// for the financial snapshot and a result view with KPIs, scenario curves,
// risk probabilities, and pivot reasons. The engine runs once per explicit
// submit, never continuously.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"runway-analyzer/internal/engine"
)

type appState int

const (
	stateForm appState = iota
	stateComputing
	stateResults
)

// analysisMsg is sent when the engine run finishes.
type analysisMsg struct {
	analysis engine.Analysis
}

// App is the root Bubble Tea model.
type App struct {
	width  int
	height int

	state appState
	vals  *formValues
	form  *huh.Form

	spinner  spinner.Model
	analysis engine.Analysis
	months   int
	runs     int
	seed     int64
}

func NewApp() App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vals := defaultFormValues()
	a := App{
		state:   stateForm,
		vals:    &vals,
		spinner: sp,
	}
	a.form = a.vals.newForm()
	return a
}

func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.state == stateForm && a.form != nil {
			form, cmd := a.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				a.form = f
			}
			return a, cmd
		}
		return a, nil

	case analysisMsg:
		a.analysis = msg.analysis
		a.state = stateResults
		return a, nil

	case spinner.TickMsg:
		if a.state == stateComputing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		switch a.state {
		case stateResults:
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return a, tea.Quit
			case "r":
				a.state = stateForm
				a.form = a.vals.newForm()
				return a, a.form.Init()
			}
			return a, nil
		case stateComputing:
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a, nil
		}
	}

	if a.state == stateForm && a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		in, months, runs, seed := a.vals.inputs()
		a.months = months
		a.runs = runs
		a.seed = seed
		a.state = stateComputing
		a.form = nil
		return a, tea.Batch(a.spinner.Tick, runAnalysisCmd(in, months, runs, seed))
	}
	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

func runAnalysisCmd(in engine.Inputs, months, runs int, seed int64) tea.Cmd {
	return func() tea.Msg {
		return analysisMsg{analysis: engine.FullAnalysis(in, months, runs, engine.NewRNG(seed))}
	}
}

func (a App) View() string {
	switch a.state {
	case stateForm:
		if a.form != nil {
			return a.form.View()
		}
		return ""
	case stateComputing:
		return fmt.Sprintf("\n  %s running %d simulations...\n", a.spinner.View(), a.runs)
	default:
		return a.viewResults()
	}
}

func (a App) viewResults() string {
	m := a.analysis.CurrentMetrics

	title := lipgloss.NewStyle().Bold(true).Render("Runway analysis")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		MetricCard("Monthly cost", money(m.MonthlyCost), 20),
		MetricCard("Net burn", money(m.NetBurn), 20),
		MetricCard("Runway", m.Runway.String(), 26),
		MetricCard("Pivot score", fmt.Sprintf("%.0f / 100", a.analysis.Pivot.Score), 16),
	)

	chart := CurveChart(a.analysis.Scenarios, 10)

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(cards + "\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Cash curves, %d months", a.months)) + "\n")
	b.WriteString(chart + "\n\n")
	b.WriteString(a.riskSection() + "\n")
	b.WriteString(a.adviceSection() + "\n")
	b.WriteString(a.reasonsSection() + "\n")
	b.WriteString(labelStyle.Render("r: new analysis   q: quit"))
	return b.String()
}

func (a App) riskSection() string {
	r := a.analysis.MonteCarlo
	rows := []string{
		fmt.Sprintf("P(cash < 0 within horizon)   %5.1f%%", r.PNegativeWithinHorizon*100),
		fmt.Sprintf("P(cash < 0 within 6 months)  %5.1f%%", r.PNegativeWithin6Months*100),
		fmt.Sprintf("P(cash < 0 within 3 months)  %5.1f%%", r.PNegativeWithin3Months*100),
		fmt.Sprintf("P(break-even within horizon) %5.1f%%", r.PBreakEvenWithinHorizon*100),
	}
	header := valueStyle.Render(fmt.Sprintf("Risk (%d runs)", r.Runs))
	return header + "\n  " + strings.Join(rows, "\n  ") + "\n"
}

func (a App) adviceSection() string {
	h := a.analysis.HiringSuggestion
	s := a.analysis.RevenueSensitivity

	runway := "unknown"
	if h.RunwayKnown {
		runway = h.ResultingRunway.String()
	}

	lines := []string{
		fmt.Sprintf("Safe hires now: %d (runway %s, floor %.1f months)", h.SafeHiresNow, runway, h.MinRequiredRunwayMonths),
		fmt.Sprintf("Break-even revenue: %s/month", money(s.RevenueNeededForBreakEven)),
		fmt.Sprintf("Extra revenue for %.0f-month runway: %s/month (%s)", s.TargetRunwayMonths, money(s.ExtraMonthlyRevenueNeeded), s.Status),
	}
	return valueStyle.Render("Recommendations") + "\n  " + strings.Join(lines, "\n  ") + "\n"
}

func (a App) reasonsSection() string {
	lines := make([]string, 0, len(a.analysis.Pivot.Reasons))
	for _, reason := range a.analysis.Pivot.Reasons {
		lines = append(lines, "- "+reason)
	}
	return valueStyle.Render("Pivot pressure") + "\n  " + strings.Join(lines, "\n  ") + "\n"
}

func money(x float64) string {
	if x < 0 {
		return fmt.Sprintf("-$%.0f", -x)
	}
	return fmt.Sprintf("$%.0f", x)
}
