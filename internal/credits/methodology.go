package credits

import (
	"fmt"
	"sort"
)

// Request carries the inputs for a single credit calculation. The leak rate
// is a mass flow; use KgPerMinFromLPM for volumetric field measurements.
type Request struct {
	LeakRateKgPerMin float64 `json:"leak_rate_kg_per_min"`
	GWP              float64 `json:"gwp"`             // CO2-equivalence factor for methane
	CreditingYears   int     `json:"crediting_years"` // crediting period in years
}

// Result is the outcome of a credit calculation, including the ordered
// calculation steps for audit and verification.
type Result struct {
	MethodologyCode string  `json:"methodology_code"`
	AnnualTonsCH4   float64 `json:"annual_tons_ch4"`  // tCH4 avoided per year
	AnnualTonsCO2e  float64 `json:"annual_tons_co2e"` // tCO2e avoided per year
	TotalCredits    float64 `json:"total_credits"`    // tCO2e over the crediting period
	Steps           []Step  `json:"steps"`
}

// Step records one stage of the calculation: the formula applied and the
// values flowing through it.
type Step struct {
	Number  int                `json:"number"`
	Name    string             `json:"name"`
	Formula string             `json:"formula"`
	Inputs  map[string]float64 `json:"inputs"`
	Outputs map[string]float64 `json:"outputs"`
}

// Metadata describes a registered methodology.
type Metadata struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Sector      string `json:"sector"`
}

// Methodology is a crediting methodology. Implementations are pure: the same
// request always produces the same result.
type Methodology interface {
	Calculate(req *Request) (*Result, error)
	Validate(req *Request) error
	Metadata() *Metadata
}

// Registry holds the supported crediting methodologies keyed by code.
type Registry struct {
	methodologies map[string]Methodology
}

// NewRegistry creates a registry with the built-in methodologies installed.
func NewRegistry() *Registry {
	r := &Registry{methodologies: make(map[string]Methodology)}
	r.Register(&DirectMeasurement{})
	return r
}

// Register installs a methodology under its metadata code, replacing any
// previous registration for the same code.
func (r *Registry) Register(m Methodology) {
	r.methodologies[m.Metadata().Code] = m
}

// Get looks up a methodology by code.
func (r *Registry) Get(code string) (Methodology, error) {
	m, ok := r.methodologies[code]
	if !ok {
		return nil, fmt.Errorf("unsupported methodology: %s", code)
	}
	return m, nil
}

// List returns metadata for all registered methodologies, sorted by code.
func (r *Registry) List() []Metadata {
	out := make([]Metadata, 0, len(r.methodologies))
	for _, m := range r.methodologies {
		out = append(out, *m.Metadata())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Calculate validates the request against the named methodology and runs it.
func (r *Registry) Calculate(code string, req *Request) (*Result, error) {
	m, err := r.Get(code)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(req); err != nil {
		return nil, fmt.Errorf("methodology validation failed: %w", err)
	}
	result, err := m.Calculate(req)
	if err != nil {
		return nil, fmt.Errorf("calculation failed: %w", err)
	}
	return result, nil
}
