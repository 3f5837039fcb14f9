package wells

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	baseline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ws := []Well{{Name: "Well-01", LeakRateLPM: 15, BaselineDate: &baseline}}

	milestones := Timeline(ws, time.Time{})
	require.Len(t, milestones, 4)

	assert.Equal(t, TaskBaselineTest, milestones[0].Task)
	assert.Equal(t, baseline, milestones[0].Start)

	plug := baseline.AddDate(0, 0, 30)
	assert.Equal(t, TaskPlugAbandon, milestones[1].Task)
	assert.Equal(t, plug, milestones[1].Start)

	assert.Equal(t, TaskTokenMint, milestones[2].Task)
	assert.Equal(t, plug.AddDate(0, 0, 31), milestones[2].Start)

	assert.Equal(t, TaskRetest, milestones[3].Task)
	assert.Equal(t, plug.AddDate(0, 0, 365), milestones[3].Start)

	for _, m := range milestones {
		assert.Equal(t, "Well-01", m.Well)
		assert.Equal(t, m.Start.AddDate(0, 0, 1), m.End)
	}
}

func TestTimelineAnchorsToEarliestBaseline(t *testing.T) {
	early := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ws := []Well{
		{Name: "Well-01", BaselineDate: &late},
		{Name: "Well-02"}, // no baseline of its own
		{Name: "Well-03", BaselineDate: &early},
	}

	milestones := Timeline(ws, time.Time{})
	require.Len(t, milestones, 12)

	// Well-02 inherits the earliest baseline among its siblings.
	assert.Equal(t, early, milestones[4].Start)
	// Wells with their own baseline keep it.
	assert.Equal(t, late, milestones[0].Start)
}

func TestTimelineExplicitReference(t *testing.T) {
	ref := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ws := []Well{{Name: "Well-01"}}

	milestones := Timeline(ws, ref)
	require.Len(t, milestones, 4)
	assert.Equal(t, ref, milestones[0].Start)
}
