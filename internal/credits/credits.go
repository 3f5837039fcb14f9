// Package credits converts measured methane leak rates into carbon credit
// quantities under the registered crediting methodologies.
package credits

import "errors"

// Physical constants used by the CarbonPath v1.3 direct-measurement formula.
const (
	// DensityKgPerLiter is the line density of methane used to convert a
	// volumetric leak measurement to a mass flow.
	DensityKgPerLiter = 0.000714

	// MinutesPerYear converts a per-minute flow to an annual total.
	MinutesPerYear = 525_600
)

// Program defaults per CarbonPath v1.3, Solution 1.
const (
	DefaultGWP            = 28.0
	DefaultCreditingYears = 50
)

// Validation errors returned by the calculators. All are terminal for the
// request; none are retryable.
var (
	ErrNonPositiveLeakRate = errors.New("leak rate must be positive")
	ErrNonPositivePeriod   = errors.New("crediting period must be positive")
	ErrNonPositiveGWP      = errors.New("GWP factor must be positive")
)

// KgPerMinFromLPM converts a volumetric methane leak rate in liters per
// minute to a mass flow in kilograms per minute.
func KgPerMinFromLPM(lpm float64) float64 {
	return lpm * DensityKgPerLiter
}
