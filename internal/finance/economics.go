package finance

import (
	"errors"
	"fmt"
	"math"

	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// Pricing errors.
var (
	ErrNonPositiveTokenPrice = errors.New("token price must be positive")
	ErrInvalidPathFee        = errors.New("path fee must be a fraction between 0 and 1")
)

// LowCreditThresholdLPM flags wells whose leak rate is too small to mint a
// meaningful credit volume.
const LowCreditThresholdLPM = 5.0

// Breakeven thresholds for risk flagging.
const (
	breakevenNonViable = 1.0
	breakevenAtRisk    = 0.8
)

// RiskFlag classifies a well's economics.
type RiskFlag string

const (
	RiskNone       RiskFlag = ""
	RiskNonViable  RiskFlag = "Non-viable"
	RiskLowCredits RiskFlag = "Low Credits"
	RiskAtRisk     RiskFlag = "At Risk"
)

// Assumptions are the scenario-level pricing and crediting parameters shared
// by every well in an evaluation.
type Assumptions struct {
	TokenPrice     float64 `json:"token_price"`     // $/tCO2e
	PathFee        float64 `json:"path_fee"`        // CarbonPath fee as a fraction of gross
	GWP            float64 `json:"gwp"`             // CO2-equivalence factor
	CreditingYears int     `json:"crediting_years"` // crediting period in years
	DiscountRate   float64 `json:"discount_rate"`   // annual discount rate as a fraction
}

// Validate checks the pricing parameters. Crediting parameters are checked
// by the methodology itself.
func (a *Assumptions) Validate() error {
	if a.TokenPrice <= 0 {
		return ErrNonPositiveTokenPrice
	}
	if a.PathFee < 0 || a.PathFee >= 1 {
		return ErrInvalidPathFee
	}
	return nil
}

// WellResult is the full economics of one well under a set of assumptions.
type WellResult struct {
	Well           wells.Well      `json:"well"`
	Credits        *credits.Result `json:"credits"`
	PlugCostPreset bool            `json:"plug_cost_preset"` // P&A cost was auto-filled from depth
	GrossRevenue   float64         `json:"gross_revenue"`
	PathFee        float64         `json:"path_fee"`
	NetRevenue     float64         `json:"net_revenue"`
	TotalCost      float64         `json:"total_cost"`
	Profit         float64         `json:"profit"`
	BreakevenShare float64         `json:"breakeven_share"` // total cost / net revenue
	Risk           RiskFlag        `json:"risk"`
}

// EvaluateWell computes credits and economics for a single well. A zero P&A
// cost is auto-filled from the depth preset table before costs are summed.
func EvaluateWell(registry *credits.Registry, well wells.Well, a Assumptions) (*WellResult, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	plugCostPreset := false
	if well.PlugCost == 0 {
		well.PlugCost = PlugCostForDepth(well.DepthFt)
		plugCostPreset = true
	}

	creditResult, err := registry.Calculate(credits.MethodologyDirectMeasurement, &credits.Request{
		LeakRateKgPerMin: credits.KgPerMinFromLPM(well.LeakRateLPM),
		GWP:              a.GWP,
		CreditingYears:   a.CreditingYears,
	})
	if err != nil {
		return nil, fmt.Errorf("well %q: %w", well.Name, err)
	}

	result := &WellResult{
		Well:           well,
		Credits:        creditResult,
		PlugCostPreset: plugCostPreset,
		GrossRevenue:   creditResult.TotalCredits * a.TokenPrice,
		TotalCost:      well.TotalCost(),
	}
	result.PathFee = result.GrossRevenue * a.PathFee
	result.NetRevenue = result.GrossRevenue - result.PathFee
	result.Profit = result.NetRevenue - result.TotalCost

	if result.NetRevenue > 0 {
		result.BreakevenShare = result.TotalCost / result.NetRevenue
	} else {
		result.BreakevenShare = math.Inf(1)
	}
	result.Risk = classifyRisk(well.LeakRateLPM, result.BreakevenShare)

	return result, nil
}

// classifyRisk applies the flags in priority order: a non-viable well is
// never additionally flagged as low-credit or at-risk.
func classifyRisk(leakLPM, breakeven float64) RiskFlag {
	switch {
	case breakeven > breakevenNonViable:
		return RiskNonViable
	case leakLPM < LowCreditThresholdLPM:
		return RiskLowCredits
	case breakeven > breakevenAtRisk:
		return RiskAtRisk
	default:
		return RiskNone
	}
}

// EvaluateWells evaluates every well under the same assumptions. The first
// error aborts the evaluation; callers wanting row-level recovery validate
// the wells up front.
func EvaluateWells(registry *credits.Registry, ws []wells.Well, a Assumptions) ([]WellResult, error) {
	results := make([]WellResult, 0, len(ws))
	for _, well := range ws {
		r, err := EvaluateWell(registry, well, a)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}
