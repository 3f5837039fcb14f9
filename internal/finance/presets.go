// Package finance holds the deterministic financial computations for well
// plugging projects: cost presets, cash-flow construction, discounted
// cash-flow metrics, per-well economics, and sensitivity sweeps.
package finance

import "math"

// CostBracket maps a depth bucket to its preset plug-and-abandon cost. A
// well belongs to the first bracket whose MaxDepthFt is not exceeded.
type CostBracket struct {
	MaxDepthFt float64 `json:"max_depth_ft"`
	Cost       float64 `json:"cost"`
}

// depthCostPresets is the standard P&A cost table. Depths beyond the table
// fall into the open-ended top bracket.
var depthCostPresets = []CostBracket{
	{MaxDepthFt: 2_000, Cost: 30_000},
	{MaxDepthFt: 5_000, Cost: 55_000},
	{MaxDepthFt: math.Inf(1), Cost: 80_000},
}

// CostPresets returns a copy of the depth-bucketed P&A cost table.
func CostPresets() []CostBracket {
	out := make([]CostBracket, len(depthCostPresets))
	copy(out, depthCostPresets)
	return out
}

// PlugCostForDepth returns the preset P&A cost for a well of the given
// depth. Any depth at or below a bracket boundary takes that bracket's cost.
func PlugCostForDepth(depthFt float64) float64 {
	for _, bracket := range depthCostPresets {
		if depthFt <= bracket.MaxDepthFt {
			return bracket.Cost
		}
	}
	return depthCostPresets[len(depthCostPresets)-1].Cost
}
