package wells

import (
	"fmt"
	"time"
)

// MinLeakRateLPM is the smallest leak rate accepted for a well. Baseline
// measurements below this are indistinguishable from sensor noise.
const MinLeakRateLPM = 0.1

// Well represents a single orphaned well candidate for plugging, as entered
// by the developer or imported from a CSV manifest.
type Well struct {
	Name            string     `json:"name"`          // well name or API number
	LeakRateLPM     float64    `json:"leak_rate_lpm"` // baseline 15-min average, liters CH4 per minute
	DepthFt         float64    `json:"depth_ft"`      // total well depth in feet
	County          string     `json:"county,omitempty"`
	BaselineDate    *time.Time `json:"baseline_date,omitempty"` // baseline CH4 test date
	PlugCost        float64    `json:"plug_cost"`               // P&A contractor cost, USD
	ReclamationCost float64    `json:"reclamation_cost"`        // surface reclamation, USD
	SensorCost      float64    `json:"sensor_cost"`             // MRV sensor + VVB audit, USD
	OtherCost       float64    `json:"other_cost"`              // developer admin and misc CAPEX, USD
}

// TotalCost returns the sum of all capital cost components for the well.
func (w *Well) TotalCost() float64 {
	return w.PlugCost + w.ReclamationCost + w.SensorCost + w.OtherCost
}

// ValidationError reports a single invalid well field. Row is 1-based and
// refers to the well's position in its scenario or CSV manifest.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("well #%d: %s: %s", e.Row, e.Field, e.Message)
}

// Validate checks a single well's fields. Row is used only to label errors.
func (w *Well) Validate(row int) error {
	if w.Name == "" {
		return &ValidationError{Row: row, Field: "name", Message: "well name or API number is required"}
	}
	if w.LeakRateLPM < MinLeakRateLPM {
		return &ValidationError{
			Row:     row,
			Field:   "leak_rate_lpm",
			Message: fmt.Sprintf("leak rate must be at least %.1f L/min", MinLeakRateLPM),
		}
	}
	if w.DepthFt < 0 {
		return &ValidationError{Row: row, Field: "depth_ft", Message: "depth cannot be negative"}
	}
	for field, cost := range map[string]float64{
		"plug_cost":        w.PlugCost,
		"reclamation_cost": w.ReclamationCost,
		"sensor_cost":      w.SensorCost,
		"other_cost":       w.OtherCost,
	} {
		if cost < 0 {
			return &ValidationError{Row: row, Field: field, Message: "cost cannot be negative"}
		}
	}
	return nil
}

// ValidateAll validates a well list and returns every error found rather
// than stopping at the first, so the caller can render row-level messages.
func ValidateAll(ws []Well) []error {
	var errs []error
	for i := range ws {
		if err := ws[i].Validate(i + 1); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
