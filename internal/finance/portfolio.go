package finance

import "errors"

// RiskCounts tallies wells by risk flag across a portfolio.
type RiskCounts struct {
	NonViable  int `json:"non_viable"`
	LowCredits int `json:"low_credits"`
	AtRisk     int `json:"at_risk"`
	Good       int `json:"good"`
}

// Summary aggregates a portfolio of evaluated wells into project-level
// KPIs and discounted cash-flow metrics. IRR and Payback are nil when
// undefined for the portfolio's series.
type Summary struct {
	WellCount    int        `json:"well_count"`
	TotalCredits float64    `json:"total_credits"`
	GrossRevenue float64    `json:"gross_revenue"`
	PathFee      float64    `json:"path_fee"`
	NetRevenue   float64    `json:"net_revenue"`
	TotalCost    float64    `json:"total_cost"`
	Profit       float64    `json:"profit"`
	NPV          float64    `json:"npv"`
	IRR          *float64   `json:"irr,omitempty"`
	PaybackYears *int       `json:"payback_years,omitempty"`
	Risk         RiskCounts `json:"risk"`
	CashFlows    Series     `json:"cash_flows"`
	MintFlows    []float64  `json:"mint_flows"`
	MintNPV      float64    `json:"mint_npv"`
}

// ErrNoWells is returned when a portfolio evaluation receives no results.
var ErrNoWells = errors.New("portfolio has no evaluated wells")

// Summarize rolls evaluated wells up into a portfolio summary. The project
// series spreads aggregate net revenue evenly over the crediting period,
// with all capital costs at year 0.
func Summarize(results []WellResult, a Assumptions) (*Summary, error) {
	if len(results) == 0 {
		return nil, ErrNoWells
	}

	s := &Summary{WellCount: len(results)}
	for i := range results {
		r := &results[i]
		s.TotalCredits += r.Credits.TotalCredits
		s.GrossRevenue += r.GrossRevenue
		s.PathFee += r.PathFee
		s.NetRevenue += r.NetRevenue
		s.TotalCost += r.TotalCost
		s.Profit += r.Profit

		switch r.Risk {
		case RiskNonViable:
			s.Risk.NonViable++
		case RiskLowCredits:
			s.Risk.LowCredits++
		case RiskAtRisk:
			s.Risk.AtRisk++
		default:
			s.Risk.Good++
		}
	}

	series, err := AnnualSeries(s.TotalCost, s.NetRevenue/float64(a.CreditingYears), a.CreditingYears)
	if err != nil {
		return nil, err
	}
	s.CashFlows = series

	nets := series.Nets()
	npv, err := NPV(a.DiscountRate, nets)
	if err != nil {
		return nil, err
	}
	s.NPV = npv

	if irr, err := IRR(nets); err == nil {
		s.IRR = &irr
	}
	if year, ok := Payback(series); ok {
		s.PaybackYears = &year
	}

	s.MintFlows = MintSchedule(s.TotalCost, s.PathFee, s.NetRevenue)
	mintNPV, err := NPV(a.DiscountRate, s.MintFlows)
	if err != nil {
		return nil, err
	}
	s.MintNPV = mintNPV

	return s, nil
}
