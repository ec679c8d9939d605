package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"runway-analyzer/internal/engine"
)

var (
	colorMuted  = lipgloss.Color("243")
	colorText   = lipgloss.Color("252")
	colorBorder = lipgloss.Color("240")

	// One color per scenario, in scenario order.
	scenarioColors = []lipgloss.Color{
		lipgloss.Color("10"), // optimistic: green
		lipgloss.Color("12"), // base: blue
		lipgloss.Color("9"),  // pessimistic: red
	}

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	zeroStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// MetricCard renders a small bordered card with a label and a value.
func MetricCard(label, value string, width int) string {
	contentWidth := width - 2
	if contentWidth < 8 {
		contentWidth = 8
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(contentWidth).
		Padding(0, 1)

	return card.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

// CurveChart plots the scenario cash curves on a character grid: month on the
// x-axis, cash on the y-axis, one marker color per scenario, and a dashed
// zero reference line. Curves are assumed to share a length.
func CurveChart(scenarios []engine.Scenario, height int) string {
	if len(scenarios) == 0 || height < 3 {
		return ""
	}
	cols := len(scenarios[0].CashCurve)

	lo, hi := 0.0, 0.0
	for _, sc := range scenarios {
		for _, v := range sc.CashCurve {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	rowFor := func(v float64) int {
		frac := (v - lo) / (hi - lo)
		r := height - 1 - int(frac*float64(height-1)+0.5)
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	// Cell owner: -1 empty, -2 zero line, otherwise scenario index.
	grid := make([][]int, height)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}
	zeroRow := rowFor(0)
	for c := 0; c < cols; c++ {
		grid[zeroRow][c] = -2
	}
	for si := len(scenarios) - 1; si >= 0; si-- {
		for m, v := range scenarios[si].CashCurve {
			grid[rowFor(v)][m] = si
		}
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		switch r {
		case 0:
			b.WriteString(labelStyle.Render(fmt.Sprintf("%10s ", compactMoney(hi))))
		case zeroRow:
			b.WriteString(labelStyle.Render(fmt.Sprintf("%10s ", "0")))
		case height - 1:
			b.WriteString(labelStyle.Render(fmt.Sprintf("%10s ", compactMoney(lo))))
		default:
			b.WriteString(strings.Repeat(" ", 11))
		}
		for c := 0; c < cols; c++ {
			switch owner := grid[r][c]; owner {
			case -1:
				b.WriteString("  ")
			case -2:
				b.WriteString(zeroStyle.Render("╌ "))
			default:
				style := lipgloss.NewStyle().Foreground(scenarioColors[owner%len(scenarioColors)])
				b.WriteString(style.Render("● "))
			}
		}
		b.WriteString("\n")
	}

	// X axis and legend.
	b.WriteString(strings.Repeat(" ", 11))
	for c := 0; c < cols; c++ {
		if c%3 == 0 {
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-2d", c)))
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	legend := make([]string, 0, len(scenarios))
	for i, sc := range scenarios {
		style := lipgloss.NewStyle().Foreground(scenarioColors[i%len(scenarioColors)])
		legend = append(legend, style.Render("●")+" "+sc.Name)
	}
	b.WriteString(strings.Repeat(" ", 11) + strings.Join(legend, "   "))

	return b.String()
}

// compactMoney formats large amounts with k/M suffixes for axis labels.
func compactMoney(x float64) string {
	neg := ""
	if x < 0 {
		neg = "-"
		x = -x
	}
	switch {
	case x >= 1e6:
		return fmt.Sprintf("%s$%.1fM", neg, x/1e6)
	case x >= 1e3:
		return fmt.Sprintf("%s$%.0fk", neg, x/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", neg, x)
	}
}
