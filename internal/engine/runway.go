package engine

import "fmt"

// Runway is either a finite number of months or infinite (net burn <= 0).
type Runway struct {
	infinite bool
	months   float64
}

func InfiniteRunway() Runway { return Runway{infinite: true} }

func FiniteRunway(months float64) Runway { return Runway{months: months} }

func (r Runway) Infinite() bool { return r.infinite }

// Months returns the finite month count. Only meaningful when !Infinite().
func (r Runway) Months() float64 { return r.months }

// Numeric returns the runway as a plain number, with -1 encoding the
// infinite case for downstream arithmetic.
func (r Runway) Numeric() float64 {
	if r.infinite {
		return -1
	}
	return r.months
}

func (r Runway) String() string {
	if r.infinite {
		return "infinite (profitable or break-even)"
	}
	return fmt.Sprintf("%.1f months", r.months)
}
