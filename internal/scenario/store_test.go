package scenario

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

func TestStoreScenarioLifecycle(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())
	sessionID := store.CreateSession()

	sc := &Scenario{
		Name:  "A",
		Wells: []wells.Well{{Name: "Well-01", LeakRateLPM: 15}},
	}
	require.NoError(t, store.PutScenario(sessionID, sc))

	got, err := store.GetScenario(sessionID, "A")
	require.NoError(t, err)
	assert.Equal(t, sc.Wells, got.Wells)
	assert.False(t, got.UpdatedAt.IsZero())

	// The returned scenario is a copy, not a view into the store.
	got.Wells[0].LeakRateLPM = 99
	again, err := store.GetScenario(sessionID, "A")
	require.NoError(t, err)
	assert.Equal(t, 15.0, again.Wells[0].LeakRateLPM)

	require.NoError(t, store.DeleteScenario(sessionID, "A"))
	_, err = store.GetScenario(sessionID, "A")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
	assert.ErrorIs(t, store.DeleteScenario(sessionID, "A"), ErrScenarioNotFound)
}

func TestStoreCopiesPointerFields(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())
	sessionID := store.CreateSession()

	baseline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sc := &Scenario{
		Name:  "A",
		Wells: []wells.Well{{Name: "Well-01", LeakRateLPM: 15, BaselineDate: &baseline}},
		Assumptions: Assumptions{
			TokenPrice:   20,
			PathFee:      Float(0.02),
			DiscountRate: Float(0.08),
		},
	}
	require.NoError(t, store.PutScenario(sessionID, sc))

	got, err := store.GetScenario(sessionID, "A")
	require.NoError(t, err)

	// Mutating through the copy's pointers must not reach the store.
	*got.Wells[0].BaselineDate = baseline.AddDate(1, 0, 0)
	*got.Assumptions.PathFee = 0.5
	*got.Assumptions.DiscountRate = 0.5

	again, err := store.GetScenario(sessionID, "A")
	require.NoError(t, err)
	assert.Equal(t, baseline, *again.Wells[0].BaselineDate)
	assert.Equal(t, 0.02, *again.Assumptions.PathFee)
	assert.Equal(t, 0.08, *again.Assumptions.DiscountRate)
}

func TestStoreUnknownSession(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())

	_, err := store.GetScenario(uuid.New(), "A")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.PutScenario(uuid.New(), &Scenario{Name: "A"}), ErrSessionNotFound)
	_, err = store.ListScenarios(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreSweepExpiresIdleSessions(t *testing.T) {
	store := NewStore(time.Minute, zap.NewNop())
	expired := store.CreateSession()
	active := store.CreateSession()

	store.mu.Lock()
	store.sessions[expired].lastSeen = time.Now().Add(-2 * time.Minute)
	store.mu.Unlock()

	store.sweep()

	_, err := store.ListScenarios(expired)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.ListScenarios(active)
	assert.NoError(t, err)
}

func TestStoreSweepKeepsTouchedSessions(t *testing.T) {
	store := NewStore(time.Minute, zap.NewNop())
	sessionID := store.CreateSession()

	store.mu.Lock()
	store.sessions[sessionID].lastSeen = time.Now().Add(-50 * time.Second)
	store.mu.Unlock()

	// Reading the session refreshes its idle timer.
	_, err := store.ListScenarios(sessionID)
	require.NoError(t, err)

	store.sweep()
	_, err = store.ListScenarios(sessionID)
	assert.NoError(t, err)
}
