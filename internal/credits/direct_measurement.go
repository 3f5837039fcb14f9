package credits

// MethodologyDirectMeasurement is the code for CarbonPath v1.3, Solution 1.
const MethodologyDirectMeasurement = "CP13-DM"

// DirectMeasurement implements CarbonPath v1.3, Solution 1 (Direct
// Measurement): a measured methane mass flow is annualized, extended over
// the crediting period, and converted to CO2-equivalent tonnes.
type DirectMeasurement struct{}

// Metadata returns the methodology description.
func (m *DirectMeasurement) Metadata() *Metadata {
	return &Metadata{
		Code:        MethodologyDirectMeasurement,
		Name:        "Direct Measurement",
		Description: "Credits from directly measured methane leak rates on plugged wells",
		Version:     "1.3",
		Sector:      "Oil & Gas Well Plugging",
	}
}

// Validate rejects requests outside the methodology's domain.
func (m *DirectMeasurement) Validate(req *Request) error {
	if req.LeakRateKgPerMin <= 0 {
		return ErrNonPositiveLeakRate
	}
	if req.CreditingYears <= 0 {
		return ErrNonPositivePeriod
	}
	if req.GWP <= 0 {
		return ErrNonPositiveGWP
	}
	return nil
}

// Calculate runs the v1.3 formula. Total credits scale exactly linearly with
// the crediting period: total = annual x years.
func (m *DirectMeasurement) Calculate(req *Request) (*Result, error) {
	if err := m.Validate(req); err != nil {
		return nil, err
	}

	years := float64(req.CreditingYears)

	annualTonsCH4 := req.LeakRateKgPerMin * MinutesPerYear / 1_000
	annualTonsCO2e := annualTonsCH4 * req.GWP
	totalCredits := annualTonsCO2e * years

	steps := []Step{
		{
			Number:  1,
			Name:    "Annualize mass flow",
			Formula: "t_CH4/yr = kg/min x 525,600 / 1,000",
			Inputs:  map[string]float64{"leak_rate_kg_per_min": req.LeakRateKgPerMin},
			Outputs: map[string]float64{"annual_tons_ch4": annualTonsCH4},
		},
		{
			Number:  2,
			Name:    "Apply global warming potential",
			Formula: "t_CO2e/yr = t_CH4/yr x GWP",
			Inputs:  map[string]float64{"annual_tons_ch4": annualTonsCH4, "gwp": req.GWP},
			Outputs: map[string]float64{"annual_tons_co2e": annualTonsCO2e},
		},
		{
			Number:  3,
			Name:    "Extend over crediting period",
			Formula: "credits = t_CO2e/yr x period_yr",
			Inputs:  map[string]float64{"annual_tons_co2e": annualTonsCO2e, "period_yr": years},
			Outputs: map[string]float64{"total_credits": totalCredits},
		},
	}

	return &Result{
		MethodologyCode: MethodologyDirectMeasurement,
		AnnualTonsCH4:   annualTonsCH4,
		AnnualTonsCO2e:  annualTonsCO2e,
		TotalCredits:    totalCredits,
		Steps:           steps,
	}, nil
}
