package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/scoring"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gateTestEnv struct {
	svc   GateService
	deps  *testDeps
	gates repository.GateRepo
}

func newGateTestEnv(t *testing.T) *gateTestEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	deps := &testDeps{
		db:             database,
		templates:      repository.NewSQLitePathTemplateRepo(database),
		instantiations: repository.NewSQLiteInstantiationRepo(database),
		goals:          repository.NewSQLiteGoalRepo(database),
		milestones:     repository.NewSQLiteMilestoneRepo(database),
		tasks:          repository.NewSQLiteTaskRepo(database),
	}
	gates := repository.NewSQLiteGateRepo(database)
	overrides := repository.NewSQLiteGateOverrideRepo(database)
	snapshots := repository.NewSQLiteSnapshotRepo(database)
	return &gateTestEnv{
		svc:   NewGateService(gates, overrides, deps.milestones, snapshots),
		deps:  deps,
		gates: gates,
	}
}

// seedMilestone instantiates a one-goal, one-milestone plan and returns the
// concrete milestone.
func (env *gateTestEnv) seedMilestone(t *testing.T, userID string) *domain.Milestone {
	t.Helper()

	g := testutil.NewGoalTemplate("Gated goal")
	g.Milestones = []domain.MilestoneTemplate{testutil.NewMilestoneTemplate("Gated milestone")}
	tree := testutil.NewPathTemplate("Gated path", g)
	testutil.SeedTree(t, env.deps.db, tree)

	svc := NewInstantiationService(env.deps.templates, testutil.NewTestUoW(env.deps.db))
	result, err := svc.Instantiate(context.Background(), InstantiateRequest{
		UserID:     userID,
		TemplateID: tree.ID,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Pace:       domain.PaceStandard,
	})
	require.NoError(t, err)

	goals, err := env.deps.goals.ListByInstantiation(context.Background(), result.InstantiationID)
	require.NoError(t, err)
	milestones, err := env.deps.milestones.ListByGoal(context.Background(), goals[0].ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	return milestones[0]
}

func TestCreateGate_RequiresExactlyOneReference(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	domainID := "d1"
	dimensionID := "dim1"

	err := env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
		MilestoneTemplateID: "mt1",
		MinScore:            7,
	})
	assert.Error(t, err, "gate with neither reference must be rejected")

	err = env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
		MilestoneTemplateID: "mt1",
		DomainID:            &domainID,
		DimensionID:         &dimensionID,
		MinScore:            7,
	})
	assert.Error(t, err, "gate with both references must be rejected")
}

func TestCreateGate_AutoGeneratesLabel(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	milestone := env.seedMilestone(t, "u1")
	domainID, _ := testutil.SeedAssessment(t, env.deps.db, "Leadership 360", "Communication", 2)

	gate := &domain.MilestoneGate{
		MilestoneTemplateID: milestone.TemplateID,
		DomainID:            &domainID,
		MinScore:            7,
	}
	require.NoError(t, env.svc.CreateGate(context.Background(), gate))
	assert.Equal(t, "Communication ≥ 7", gate.Label)

	stored, err := env.gates.GetByID(context.Background(), gate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Communication ≥ 7", stored.Label)
}

func TestEvaluateMilestone_StatusBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []float64
		want   scoring.GateStatusKind
	}{
		{name: "met", scores: []float64{7, 7}, want: scoring.GateMet},
		{name: "close", scores: []float64{6.4, 6.0}, want: scoring.GateClose},
		{name: "unmet", scores: []float64{5.9, 5.9}, want: scoring.GateUnmet},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newGateTestEnv(t)
			milestone := env.seedMilestone(t, "u1")
			domainID, questions := testutil.SeedAssessment(t, env.deps.db, "Core skills", "Focus", len(tt.scores))

			ratings := make(map[string]float64, len(questions))
			for i, q := range questions {
				ratings[q] = tt.scores[i]
			}
			testutil.SeedSnapshot(t, env.deps.db, "u1", domainID, time.Now().UTC(), ratings)

			require.NoError(t, env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
				MilestoneTemplateID: milestone.TemplateID,
				DomainID:            &domainID,
				MinScore:            7,
			}))

			evals, err := env.svc.EvaluateMilestone(context.Background(), "u1", milestone.ID)
			require.NoError(t, err)
			require.Len(t, evals, 1)
			assert.Equal(t, tt.want, evals[0].Status)
			require.NotNil(t, evals[0].CurrentScore)
		})
	}
}

func TestEvaluateMilestone_NoScoreDataIsUnknown(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	milestone := env.seedMilestone(t, "u1")
	domainID, _ := testutil.SeedAssessment(t, env.deps.db, "Core skills", "Focus", 2)

	require.NoError(t, env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
		MilestoneTemplateID: milestone.TemplateID,
		DomainID:            &domainID,
		MinScore:            7,
	}))

	evals, err := env.svc.EvaluateMilestone(context.Background(), "u1", milestone.ID)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, scoring.GateUnknown, evals[0].Status)
	assert.Nil(t, evals[0].CurrentScore)
}

func TestEvaluateMilestone_LatestSnapshotWins(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	milestone := env.seedMilestone(t, "u1")
	domainID, questions := testutil.SeedAssessment(t, env.deps.db, "Core skills", "Focus", 1)

	now := time.Now().UTC()
	// A stale snapshot with a wildly different rating must not count.
	testutil.SeedSnapshot(t, env.deps.db, "u1", domainID, now.AddDate(0, 0, -30), map[string]float64{questions[0]: 1})
	testutil.SeedSnapshot(t, env.deps.db, "u1", domainID, now, map[string]float64{questions[0]: 8})

	require.NoError(t, env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
		MilestoneTemplateID: milestone.TemplateID,
		DomainID:            &domainID,
		MinScore:            7,
	}))

	evals, err := env.svc.EvaluateMilestone(context.Background(), "u1", milestone.ID)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, scoring.GateMet, evals[0].Status)
	require.NotNil(t, evals[0].CurrentScore)
	assert.Equal(t, 8.0, *evals[0].CurrentScore)
}

func TestEvaluateMilestone_OverrideSupersedesScore(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	milestone := env.seedMilestone(t, "u1")
	domainID, questions := testutil.SeedAssessment(t, env.deps.db, "Core skills", "Focus", 1)
	testutil.SeedSnapshot(t, env.deps.db, "u1", domainID, time.Now().UTC(), map[string]float64{questions[0]: 2})

	gate := &domain.MilestoneGate{
		MilestoneTemplateID: milestone.TemplateID,
		DomainID:            &domainID,
		MinScore:            7,
	}
	require.NoError(t, env.svc.CreateGate(context.Background(), gate))

	require.NoError(t, env.svc.RecordOverride(context.Background(), &domain.GateOverride{
		MilestoneID:  milestone.ID,
		GateID:       gate.ID,
		OverriddenBy: "coach-7",
		Reason:       "demonstrated competency during live workshop",
	}))

	evals, err := env.svc.EvaluateMilestone(context.Background(), "u1", milestone.ID)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, scoring.GateOverridden, evals[0].Status)
	require.NotNil(t, evals[0].Override)
	assert.Equal(t, "coach-7", evals[0].Override.OverriddenBy)
	assert.Nil(t, evals[0].CurrentScore, "score must not be considered when overridden")
}

func TestEvaluateMilestone_DimensionGatesStayUnknown(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	milestone := env.seedMilestone(t, "u1")
	dimensionID := "presence"

	require.NoError(t, env.svc.CreateGate(context.Background(), &domain.MilestoneGate{
		MilestoneTemplateID: milestone.TemplateID,
		DimensionID:         &dimensionID,
		MinScore:            5,
	}))

	evals, err := env.svc.EvaluateMilestone(context.Background(), "u1", milestone.ID)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, scoring.GateUnknown, evals[0].Status)
}

func TestRecordOverride_RequiresReason(t *testing.T) {
	t.Parallel()

	env := newGateTestEnv(t)
	err := env.svc.RecordOverride(context.Background(), &domain.GateOverride{
		MilestoneID:  "m1",
		GateID:       "g1",
		OverriddenBy: "coach-1",
	})
	assert.Error(t, err)
}
