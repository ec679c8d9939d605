package engine

// HiringSuggestion reports the largest hire count that keeps runway acceptable.
type HiringSuggestion struct {
	MinRequiredRunwayMonths float64
	SafeHiresNow            int
	// ResultingRunway is only meaningful when RunwayKnown is true. RunwayKnown
	// is false when no candidate in the scan range met the threshold.
	ResultingRunway Runway
	RunwayKnown     bool
}

const maxHireCandidates = 20

// SafeHiresSuggestion scans hire counts 0..20 and keeps the highest count
// whose resulting runway is either infinite or at least minRunwayMonths.
// The scan never stops early: the maximum acceptable hire count wins, not the
// first. Infinite runway is acceptable at any hire count.
func SafeHiresSuggestion(in Inputs, minRunwayMonths float64) HiringSuggestion {
	out := HiringSuggestion{
		MinRequiredRunwayMonths: minRunwayMonths,
	}

	for hires := 0; hires <= maxHireCandidates; hires++ {
		m := BurnAndRunway(in.WithPlannedHires(hires))

		if m.Runway.Infinite() {
			out.SafeHiresNow = hires
			out.ResultingRunway = InfiniteRunway()
			out.RunwayKnown = true
			continue
		}
		if m.Runway.Months() >= minRunwayMonths {
			out.SafeHiresNow = hires
			out.ResultingRunway = m.Runway
			out.RunwayKnown = true
		}
	}
	return out
}
