package pacing

import (
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

// EstimateCompletion walks goals in order, milestones in order within each
// goal, advancing a single date cursor by each milestone's pace-resolved day
// count. The cursor is shared across goal boundaries: goals are sequential,
// never parallel. Plain calendar-day addition, no business-day logic.
//
// This is the same advance rule the instantiation walk uses to assign due
// dates, so the preview date always equals the committed plan's final due
// date for identical inputs.
func EstimateCompletion(goals []domain.GoalTemplate, start time.Time, pace domain.Pace) time.Time {
	cursor := start
	for _, g := range goals {
		for _, m := range g.Milestones {
			cursor = cursor.AddDate(0, 0, ResolveDays(m, pace))
		}
	}
	return cursor
}
