package pacing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCompletion_CursorSharedAcrossGoals(t *testing.T) {
	t.Parallel()

	// Two goals, two milestones each, 5 optimal days per milestone.
	goals := []domain.GoalTemplate{
		{
			Milestones: []domain.MilestoneTemplate{
				{DaysOptimal: intPtr(5)},
				{DaysOptimal: intPtr(5)},
			},
		},
		{
			Milestones: []domain.MilestoneTemplate{
				{DaysOptimal: intPtr(5)},
				{DaysOptimal: intPtr(5)},
			},
		},
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := EstimateCompletion(goals, start, domain.PaceStandard)
	want := time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EstimateCompletion = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestEstimateCompletion_EmptyTemplate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	got := EstimateCompletion(nil, start, domain.PaceStandard)
	if !got.Equal(start) {
		t.Errorf("EstimateCompletion(nil) = %v, want start date unchanged", got)
	}
}

func TestEstimateCompletion_DefaultDaysWhenNoHints(t *testing.T) {
	t.Parallel()

	goals := []domain.GoalTemplate{
		{Milestones: []domain.MilestoneTemplate{{}, {}}},
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := EstimateCompletion(goals, start, domain.PacePartTime)
	want := start.AddDate(0, 0, 2*DefaultDays)
	if !got.Equal(want) {
		t.Errorf("EstimateCompletion = %v, want %v", got, want)
	}
}

// TestEstimateCompletion_Properties property-tests the estimator: idempotent
// for identical inputs, and the final date always equals start plus the sum
// of per-milestone resolved day counts.
func TestEstimateCompletion_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	paces := []domain.Pace{domain.PaceIntensive, domain.PaceStandard, domain.PacePartTime}

	for trial := 0; trial < 100; trial++ {
		numGoals := rng.Intn(5)
		goals := make([]domain.GoalTemplate, numGoals)
		for i := range goals {
			numMilestones := rng.Intn(4)
			ms := make([]domain.MilestoneTemplate, numMilestones)
			for j := range ms {
				if rng.Intn(2) == 1 {
					ms[j].DaysMin = intPtr(rng.Intn(10))
				}
				if rng.Intn(2) == 1 {
					ms[j].DaysOptimal = intPtr(rng.Intn(20))
				}
				if rng.Intn(2) == 1 {
					ms[j].DaysMax = intPtr(rng.Intn(40))
				}
			}
			goals[i].Milestones = ms
		}
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365))
		pace := paces[rng.Intn(len(paces))]

		first := EstimateCompletion(goals, start, pace)
		second := EstimateCompletion(goals, start, pace)
		assert.True(t, first.Equal(second), "trial %d: estimator must be restart-safe", trial)

		totalDays := 0
		for _, g := range goals {
			for _, m := range g.Milestones {
				totalDays += ResolveDays(m, pace)
			}
		}
		assert.True(t, first.Equal(start.AddDate(0, 0, totalDays)),
			"trial %d: final date must equal start + sum of resolved days", trial)
	}
}
