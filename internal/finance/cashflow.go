package finance

import "errors"

// Series construction errors.
var (
	ErrEmptySeries        = errors.New("cash-flow series is empty")
	ErrNonPositiveHorizon = errors.New("horizon must be positive")
)

// CashFlow is one year of a project cash-flow series.
type CashFlow struct {
	Year    int     `json:"year"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
}

// Net returns the year's net cash flow.
func (c CashFlow) Net() float64 {
	return c.Revenue - c.Cost
}

// Series is an ordered annual cash-flow series starting at year 0.
type Series []CashFlow

// Nets returns the net cash flow per year, in year order.
func (s Series) Nets() []float64 {
	nets := make([]float64, len(s))
	for i, cf := range s {
		nets[i] = cf.Net()
	}
	return nets
}

// AnnualSeries builds the standard project series: the full capital cost is
// incurred at year 0 and credit revenue accrues once per year from year 1
// through the horizon.
func AnnualSeries(totalCost, annualRevenue float64, horizonYears int) (Series, error) {
	if horizonYears <= 0 {
		return nil, ErrNonPositiveHorizon
	}
	series := make(Series, horizonYears+1)
	series[0] = CashFlow{Year: 0, Cost: totalCost}
	for year := 1; year <= horizonYears; year++ {
		series[year] = CashFlow{Year: year, Revenue: annualRevenue}
	}
	return series, nil
}

// MintSchedule is the short monthly schedule around token mint: capital
// costs at month 0, the CarbonPath registry fee at month 1, and net revenue
// from token sales at month 2. Returned as net flows per month.
func MintSchedule(totalCost, pathFee, netRevenue float64) []float64 {
	return []float64{-totalCost, -pathFee, netRevenue}
}
