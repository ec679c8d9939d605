package engine

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCurvesCSV writes the scenario cash curves as one row per month,
// one column per scenario. All curves are assumed to share a length
// (ScenarioAnalysis guarantees this).
func WriteCurvesCSV(path string, scenarios []Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"month"}
	for _, sc := range scenarios {
		header = append(header, sc.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	if len(scenarios) == 0 {
		return w.Error()
	}

	for m := range scenarios[0].CashCurve {
		row := []string{strconv.Itoa(m)}
		for _, sc := range scenarios {
			row = append(row, fmtFloat(sc.CashCurve[m]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
