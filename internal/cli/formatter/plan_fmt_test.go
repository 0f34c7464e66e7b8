package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlanInspect_RendersGoalsMilestonesAndTasks(t *testing.T) {
	est := time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)
	data := PlanInspectData{
		Instantiation: &domain.Instantiation{
			ID:                  "inst-1234-5678",
			Pace:                domain.PaceStandard,
			StartDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:              domain.InstantiationActive,
			EstimatedCompletion: &est,
		},
		Goals: []*domain.Goal{
			{ID: "g1", Title: "Find your footing", Category: "career", Timeframe: domain.TimeframeShort},
		},
		Milestones: map[string][]*domain.Milestone{
			"g1": {{ID: "m1", GoalID: "g1", Title: "Baseline", DueDate: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)}},
		},
		Tasks: map[string][]*domain.Task{
			"g1": {{ID: "t1", GoalID: "g1", Title: "Book a coach session", Quadrant: domain.QuadrantImportantUrgent}},
		},
	}

	out := FormatPlanInspect(data)
	assert.Contains(t, out, "Find your footing")
	assert.Contains(t, out, "Baseline")
	assert.Contains(t, out, "Jan 6, 2026")
	assert.Contains(t, out, "Book a coach session")
	assert.Contains(t, out, "Active")
}

func TestFormatPlanList_ShowsDashWithoutEstimate(t *testing.T) {
	out := FormatPlanList([]*domain.Instantiation{
		{
			ID:        "inst-abcd-efgh",
			Pace:      domain.PacePartTime,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:    domain.InstantiationBuilding,
		},
	})
	assert.Contains(t, out, "Building")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "Mar 1, 2026")
}
