// Package scenario manages per-session what-if scenarios: named bundles of
// wells and pricing assumptions, evaluated on demand and held only in
// memory for the life of the session.
package scenario

import (
	"time"

	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// Assumptions are a scenario's crediting parameters as supplied by the
// caller. PathFee and DiscountRate are pointers because zero is a legitimate
// value for both; nil means "use the service default". Zero is invalid for
// the remaining fields, so a plain zero there means unset.
type Assumptions struct {
	TokenPrice     float64  `json:"token_price"`
	PathFee        *float64 `json:"path_fee,omitempty"`
	GWP            float64  `json:"gwp"`
	CreditingYears int      `json:"crediting_years"`
	DiscountRate   *float64 `json:"discount_rate,omitempty"`
}

// Float returns a pointer to v, for building assumption overrides.
func Float(v float64) *float64 {
	return &v
}

// Scenario is a named bundle of wells and assumptions. Scenarios live inside
// a session and are discarded when the session expires.
type Scenario struct {
	Name        string       `json:"name"`
	Wells       []wells.Well `json:"wells"`
	Assumptions Assumptions  `json:"assumptions"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Evaluation is a scenario's computed results: per-well economics, the
// portfolio summary, and the derived project timeline.
type Evaluation struct {
	Scenario    string               `json:"scenario"`
	Assumptions finance.Assumptions  `json:"assumptions"` // effective values after defaulting
	Wells       []finance.WellResult `json:"wells"`
	Summary     *finance.Summary     `json:"summary"`
	Timeline    []wells.Milestone    `json:"timeline"`
}

// Comparison is a side-by-side evaluation of two scenarios with aggregate
// deltas (B minus A).
type Comparison struct {
	A     *Evaluation     `json:"a"`
	B     *Evaluation     `json:"b"`
	Delta ComparisonDelta `json:"delta"`
}

// ComparisonDelta holds the headline B-minus-A differences.
type ComparisonDelta struct {
	TotalCredits float64 `json:"total_credits"`
	GrossRevenue float64 `json:"gross_revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
	NPV          float64 `json:"npv"`
}
