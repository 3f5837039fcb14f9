package wells

import "time"

// Milestone names for the standard CarbonPath project schedule.
const (
	TaskBaselineTest = "Baseline CH4 Test"
	TaskPlugAbandon  = "Plug & Abandon"
	TaskTokenMint    = "Token Mint"
	TaskRetest       = "Second Test"
)

// Standard offsets between project milestones. P&A is scheduled 30 days
// after the baseline test; the mint and retest offsets are measured from the
// P&A date.
const (
	plugOffsetDays   = 30
	mintOffsetDays   = 31
	retestOffsetDays = 365
)

// Milestone is a single scheduled task for one well.
type Milestone struct {
	Well        string    `json:"well"`
	Task        string    `json:"task"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
}

// Timeline derives the project schedule for a set of wells. Wells without a
// baseline date are anchored to the reference date; if the reference date is
// zero, the earliest baseline date among the wells is used, falling back to
// today.
func Timeline(ws []Well, reference time.Time) []Milestone {
	if reference.IsZero() {
		reference = earliestBaseline(ws)
	}

	milestones := make([]Milestone, 0, len(ws)*4)
	for i := range ws {
		well := &ws[i]
		baseline := reference
		if well.BaselineDate != nil {
			baseline = *well.BaselineDate
		}
		plug := baseline.AddDate(0, 0, plugOffsetDays)
		mint := plug.AddDate(0, 0, mintOffsetDays)
		retest := plug.AddDate(0, 0, retestOffsetDays)

		milestones = append(milestones,
			Milestone{
				Well:        well.Name,
				Task:        TaskBaselineTest,
				Start:       baseline,
				End:         baseline.AddDate(0, 0, 1),
				Description: "Initial methane measurement",
			},
			Milestone{
				Well:        well.Name,
				Task:        TaskPlugAbandon,
				Start:       plug,
				End:         plug.AddDate(0, 0, 1),
				Description: "Well plugging operation",
			},
			Milestone{
				Well:        well.Name,
				Task:        TaskTokenMint,
				Start:       mint,
				End:         mint.AddDate(0, 0, 1),
				Description: "100% provisional credits minted",
			},
			Milestone{
				Well:        well.Name,
				Task:        TaskRetest,
				Start:       retest,
				End:         retest.AddDate(0, 0, 1),
				Description: "Verification measurement",
			},
		)
	}
	return milestones
}

func earliestBaseline(ws []Well) time.Time {
	var earliest time.Time
	for i := range ws {
		if ws[i].BaselineDate == nil {
			continue
		}
		if earliest.IsZero() || ws[i].BaselineDate.Before(earliest) {
			earliest = *ws[i].BaselineDate
		}
	}
	if earliest.IsZero() {
		now := time.Now()
		earliest = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return earliest
}
