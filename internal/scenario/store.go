package scenario

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// Store errors.
var (
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrScenarioNotFound = errors.New("scenario not found")
)

// session holds one user's scenarios. Access is guarded by the store mutex;
// lastSeen is refreshed on every touch.
type session struct {
	id        uuid.UUID
	scenarios map[string]*Scenario
	lastSeen  time.Time
}

// Store is the in-memory session store. Sessions expire after the TTL and
// are swept on a cron schedule; nothing is ever persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewStore creates a session store sweeping expired sessions every minute.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		cron:     cron.New(),
		logger:   logger,
	}
	s.cron.Schedule(cron.Every(time.Minute), cron.FuncJob(s.sweep))
	return s
}

// Start begins the background sweep schedule.
func (s *Store) Start() {
	s.cron.Start()
}

// Stop halts the sweep schedule and waits for a running sweep to finish.
func (s *Store) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// CreateSession allocates a new empty session and returns its ID.
func (s *Store) CreateSession() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.sessions[id] = &session{
		id:        id,
		scenarios: make(map[string]*Scenario),
		lastSeen:  time.Now(),
	}
	return id
}

// PutScenario stores a scenario under its name, creating or replacing it.
func (s *Store) PutScenario(sessionID uuid.UUID, sc *Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.lastSeen = time.Now()
	sc.UpdatedAt = sess.lastSeen
	sess.scenarios[sc.Name] = sc
	return nil
}

// GetScenario returns a copy of the named scenario.
func (s *Store) GetScenario(sessionID uuid.UUID, name string) (*Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = time.Now()

	sc, ok := sess.scenarios[name]
	if !ok {
		return nil, ErrScenarioNotFound
	}
	return copyScenario(sc), nil
}

// ListScenarios returns copies of every scenario in the session, sorted by
// name.
func (s *Store) ListScenarios(sessionID uuid.UUID) ([]*Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = time.Now()

	out := make([]*Scenario, 0, len(sess.scenarios))
	for _, sc := range sess.scenarios {
		out = append(out, copyScenario(sc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteScenario removes the named scenario.
func (s *Store) DeleteScenario(sessionID uuid.UUID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.lastSeen = time.Now()

	if _, ok := sess.scenarios[name]; !ok {
		return ErrScenarioNotFound
	}
	delete(sess.scenarios, name)
	return nil
}

// sweep drops sessions idle past the TTL.
func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			s.logger.Debug("expired session swept", zap.String("session_id", id.String()))
		}
	}
}

// copyScenario deep-copies a scenario so callers never share memory with the
// stored one: the well slice, each well's baseline date, and the assumption
// overrides are all cloned.
func copyScenario(sc *Scenario) *Scenario {
	out := *sc
	out.Wells = make([]wells.Well, len(sc.Wells))
	copy(out.Wells, sc.Wells)
	for i := range out.Wells {
		if d := out.Wells[i].BaselineDate; d != nil {
			clone := *d
			out.Wells[i].BaselineDate = &clone
		}
	}
	if f := sc.Assumptions.PathFee; f != nil {
		clone := *f
		out.Assumptions.PathFee = &clone
	}
	if r := sc.Assumptions.DiscountRate; r != nil {
		clone := *r
		out.Assumptions.DiscountRate = &clone
	}
	return &out
}
