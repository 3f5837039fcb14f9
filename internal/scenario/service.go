package scenario

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// Service provides scenario operations on top of the session store. All
// computation is delegated to the credits and finance packages; the service
// itself only validates, stores, and assembles.
type Service struct {
	store    *Store
	registry *credits.Registry
	defaults finance.Assumptions
	logger   *zap.Logger
}

// NewService creates a scenario service. The default assumptions seed the
// sample scenarios and fill any parameter a stored scenario leaves unset
// when it is evaluated.
func NewService(store *Store, registry *credits.Registry, defaults finance.Assumptions, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		registry: registry,
		defaults: defaults,
		logger:   logger,
	}
}

// CreateSession opens a session seeded with the sample A and B scenarios.
func (s *Service) CreateSession() (uuid.UUID, error) {
	id := s.store.CreateSession()
	for _, sc := range s.sampleScenarios() {
		if err := s.store.PutScenario(id, sc); err != nil {
			return uuid.Nil, err
		}
	}
	s.logger.Info("session created", zap.String("session_id", id.String()))
	return id, nil
}

// Get returns the named scenario.
func (s *Service) Get(sessionID uuid.UUID, name string) (*Scenario, error) {
	return s.store.GetScenario(sessionID, name)
}

// List returns every scenario in the session.
func (s *Service) List(sessionID uuid.UUID) ([]*Scenario, error) {
	return s.store.ListScenarios(sessionID)
}

// Save validates and stores a scenario. The scenario is stored exactly as
// supplied; defaults are merged in only when it is evaluated.
func (s *Service) Save(sessionID uuid.UUID, sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	effective := s.resolve(sc.Assumptions)
	if err := effective.Validate(); err != nil {
		return err
	}
	if errs := wells.ValidateAll(sc.Wells); len(errs) > 0 {
		return errs[0]
	}
	return s.store.PutScenario(sessionID, sc)
}

// Delete removes the named scenario.
func (s *Service) Delete(sessionID uuid.UUID, name string) error {
	return s.store.DeleteScenario(sessionID, name)
}

// Clone copies scenario from onto scenario to within the same session.
func (s *Service) Clone(sessionID uuid.UUID, from, to string) (*Scenario, error) {
	if to == "" {
		return nil, fmt.Errorf("clone target name is required")
	}
	src, err := s.store.GetScenario(sessionID, from)
	if err != nil {
		return nil, err
	}
	src.Name = to
	if err := s.store.PutScenario(sessionID, src); err != nil {
		return nil, err
	}
	s.logger.Info("scenario cloned",
		zap.String("session_id", sessionID.String()),
		zap.String("from", from),
		zap.String("to", to))
	return src, nil
}

// Evaluate runs the full credit and economics computation for a scenario.
func (s *Service) Evaluate(sessionID uuid.UUID, name string) (*Evaluation, error) {
	sc, err := s.store.GetScenario(sessionID, name)
	if err != nil {
		return nil, err
	}
	return s.evaluate(sc)
}

func (s *Service) evaluate(sc *Scenario) (*Evaluation, error) {
	effective := s.resolve(sc.Assumptions)

	results, err := finance.EvaluateWells(s.registry, sc.Wells, effective)
	if err != nil {
		return nil, err
	}
	summary, err := finance.Summarize(results, effective)
	if err != nil {
		return nil, err
	}
	return &Evaluation{
		Scenario:    sc.Name,
		Assumptions: effective,
		Wells:       results,
		Summary:     summary,
		Timeline:    wells.Timeline(sc.Wells, time.Time{}),
	}, nil
}

// Compare evaluates two scenarios and reports B-minus-A deltas.
func (s *Service) Compare(sessionID uuid.UUID, nameA, nameB string) (*Comparison, error) {
	evalA, err := s.Evaluate(sessionID, nameA)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", nameA, err)
	}
	evalB, err := s.Evaluate(sessionID, nameB)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", nameB, err)
	}
	return &Comparison{
		A: evalA,
		B: evalB,
		Delta: ComparisonDelta{
			TotalCredits: evalB.Summary.TotalCredits - evalA.Summary.TotalCredits,
			GrossRevenue: evalB.Summary.GrossRevenue - evalA.Summary.GrossRevenue,
			TotalCost:    evalB.Summary.TotalCost - evalA.Summary.TotalCost,
			Profit:       evalB.Summary.Profit - evalA.Summary.Profit,
			NPV:          evalB.Summary.NPV - evalA.Summary.NPV,
		},
	}, nil
}

// Sensitivity sweeps the scenario's portfolio profit over a token-price x
// fee grid.
func (s *Service) Sensitivity(sessionID uuid.UUID, name string, tokenPrices, pathFees []float64) (*finance.SweepResult, error) {
	sc, err := s.store.GetScenario(sessionID, name)
	if err != nil {
		return nil, err
	}
	return finance.Sweep(s.registry, sc.Wells, s.resolve(sc.Assumptions), tokenPrices, pathFees)
}

// resolve merges a scenario's assumptions with the service defaults. Zero is
// invalid for token price, GWP, and crediting years, so zero there falls back
// to the default; path fee and discount rate are legitimately zero and fall
// back only when nil.
func (s *Service) resolve(a Assumptions) finance.Assumptions {
	out := finance.Assumptions{
		TokenPrice:     a.TokenPrice,
		PathFee:        s.defaults.PathFee,
		GWP:            a.GWP,
		CreditingYears: a.CreditingYears,
		DiscountRate:   s.defaults.DiscountRate,
	}
	if out.TokenPrice == 0 {
		out.TokenPrice = s.defaults.TokenPrice
	}
	if out.GWP == 0 {
		out.GWP = s.defaults.GWP
	}
	if out.CreditingYears == 0 {
		out.CreditingYears = s.defaults.CreditingYears
	}
	if a.PathFee != nil {
		out.PathFee = *a.PathFee
	}
	if a.DiscountRate != nil {
		out.DiscountRate = *a.DiscountRate
	}
	return out
}

// sampleScenarios builds the seeded A and B scenarios: the same sample
// wells, with B priced at a higher token price.
func (s *Service) sampleScenarios() []*Scenario {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	sample := []wells.Well{
		{Name: "Well-01", LeakRateLPM: 15, DepthFt: 1500, County: "Johnson", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-02", LeakRateLPM: 42, DepthFt: 2200, County: "Tarrant", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-03", LeakRateLPM: 36, DepthFt: 4800, County: "Parker", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-04", LeakRateLPM: 22, DepthFt: 3500, County: "Wise", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-05", LeakRateLPM: 12, DepthFt: 4200, County: "Denton", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-06", LeakRateLPM: 15, DepthFt: 6000, County: "Hood", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-07", LeakRateLPM: 32, DepthFt: 5500, County: "Erath", BaselineDate: &today, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
	}

	a := Assumptions{
		TokenPrice:     20,
		PathFee:        Float(s.defaults.PathFee),
		GWP:            s.defaults.GWP,
		CreditingYears: s.defaults.CreditingYears,
		DiscountRate:   Float(s.defaults.DiscountRate),
	}
	b := a
	b.TokenPrice = 25
	b.PathFee = Float(s.defaults.PathFee)
	b.DiscountRate = Float(s.defaults.DiscountRate)

	wellsB := make([]wells.Well, len(sample))
	copy(wellsB, sample)

	return []*Scenario{
		{Name: "A", Wells: sample, Assumptions: a},
		{Name: "B", Wells: wellsB, Assumptions: b},
	}
}
