package finance

import (
	"errors"
	"math"
)

// Metric errors. ErrIRRUndefined covers both single-signed series, where no
// root exists, and failure of the root finder to converge.
var (
	ErrInvalidDiscountRate = errors.New("discount rate must be greater than -100%")
	ErrIRRUndefined        = errors.New("IRR is undefined for this cash-flow series")
)

// Bisection bounds for the IRR search. Rates outside (-99.99%, 1000%) are
// not meaningful for these projects.
const (
	irrLowerBound = -0.9999
	irrUpperBound = 10.0
	irrTolerance  = 1e-7
	irrMaxIter    = 200
)

// NPV discounts each period's net flow at the given per-period rate. The
// first flow is at period 0 and is not discounted, so a zero rate yields the
// plain sum of the flows.
func NPV(rate float64, flows []float64) (float64, error) {
	if len(flows) == 0 {
		return 0, ErrEmptySeries
	}
	if rate <= -1 {
		return 0, ErrInvalidDiscountRate
	}
	npv := 0.0
	for t, flow := range flows {
		npv += flow / math.Pow(1+rate, float64(t))
	}
	return npv, nil
}

// Payback returns the first year the cumulative net cash flow turns
// non-negative. ok is false when the series never pays back within its
// horizon; that is a valid outcome, not an error.
func Payback(s Series) (year int, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	cumulative := 0.0
	for _, cf := range s {
		cumulative += cf.Net()
		if cumulative >= 0 {
			return cf.Year, true
		}
	}
	return 0, false
}

// IRR finds the rate at which the series' NPV is zero, by bisection. A
// series whose flows are all one sign has no root and reports
// ErrIRRUndefined, as does a bracket that never straddles zero or a search
// that fails to converge.
func IRR(flows []float64) (float64, error) {
	if len(flows) == 0 {
		return 0, ErrEmptySeries
	}
	if !mixedSigns(flows) {
		return 0, ErrIRRUndefined
	}

	lo, hi := irrLowerBound, irrUpperBound
	fLo, err := NPV(lo, flows)
	if err != nil {
		return 0, err
	}
	fHi, err := NPV(hi, flows)
	if err != nil {
		return 0, err
	}
	if fLo*fHi > 0 {
		return 0, ErrIRRUndefined
	}

	for i := 0; i < irrMaxIter; i++ {
		mid := (lo + hi) / 2
		fMid, err := NPV(mid, flows)
		if err != nil {
			return 0, err
		}
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, ErrIRRUndefined
}

func mixedSigns(flows []float64) bool {
	hasPositive, hasNegative := false, false
	for _, f := range flows {
		if f > 0 {
			hasPositive = true
		}
		if f < 0 {
			hasNegative = true
		}
	}
	return hasPositive && hasNegative
}
