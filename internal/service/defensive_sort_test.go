package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsortedTemplateRepo returns a tree whose levels are deliberately out of
// stored order, simulating a template store that does not honor order_index.
type unsortedTemplateRepo struct {
	tree *domain.PathTemplate
}

func (r *unsortedTemplateRepo) GetTree(ctx context.Context, id string) (*domain.PathTemplate, error) {
	if id != r.tree.ID {
		return nil, repository.ErrNotFound
	}
	// Return a shallow copy so the service's sort does not fix our fixture.
	copied := *r.tree
	copied.Goals = append([]domain.GoalTemplate(nil), r.tree.Goals...)
	return &copied, nil
}

func (r *unsortedTemplateRepo) List(ctx context.Context) ([]*domain.PathTemplate, error) {
	return []*domain.PathTemplate{r.tree}, nil
}

func TestInstantiate_SortsUntrustedTemplateOrder(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)

	short := testutil.IntPtr(2)
	long := testutil.IntPtr(9)

	second := testutil.NewGoalTemplate("Second goal", testutil.WithGoalOrder(1))
	second.Milestones = []domain.MilestoneTemplate{
		testutil.NewMilestoneTemplate("Late milestone", testutil.WithDays(nil, long, nil), testutil.WithMilestoneOrder(0)),
	}
	first := testutil.NewGoalTemplate("First goal", testutil.WithGoalOrder(0))
	first.Milestones = []domain.MilestoneTemplate{
		// Listed inverted on purpose.
		testutil.NewMilestoneTemplate("B", testutil.WithDays(nil, long, nil), testutil.WithMilestoneOrder(1)),
		testutil.NewMilestoneTemplate("A", testutil.WithDays(nil, short, nil), testutil.WithMilestoneOrder(0)),
	}

	// Goals listed inverted too.
	tree := testutil.NewPathTemplate("Shuffled path", second, first)
	testutil.SeedTree(t, database, tree)
	stub := &unsortedTemplateRepo{tree: tree}

	svc := NewInstantiationService(stub, testutil.NewTestUoW(database))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.Instantiate(context.Background(), InstantiateRequest{
		UserID:     "u1",
		TemplateID: tree.ID,
		StartDate:  start,
		Pace:       domain.PaceStandard,
	})
	require.NoError(t, err)

	goals, err := repository.NewSQLiteGoalRepo(database).ListByInstantiation(context.Background(), result.InstantiationID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "First goal", goals[0].Title)
	assert.Equal(t, "Second goal", goals[1].Title)

	milestones, err := repository.NewSQLiteMilestoneRepo(database).ListByGoal(context.Background(), goals[0].ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	// A (2 days) walks first despite being listed second.
	assert.Equal(t, "A", milestones[0].Title)
	assert.Equal(t, "2026-01-03", milestones[0].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2026-01-12", milestones[1].DueDate.Format("2006-01-02"))
}
