package service

import (
	"context"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
)

type planService struct {
	instantiations repository.InstantiationRepo
	goals          repository.GoalRepo
	milestones     repository.MilestoneRepo
	tasks          repository.TaskRepo
}

func NewPlanService(
	instantiations repository.InstantiationRepo,
	goals repository.GoalRepo,
	milestones repository.MilestoneRepo,
	tasks repository.TaskRepo,
) PlanService {
	return &planService{
		instantiations: instantiations,
		goals:          goals,
		milestones:     milestones,
		tasks:          tasks,
	}
}

func (s *planService) ListByUser(ctx context.Context, userID string) ([]*domain.Instantiation, error) {
	return s.instantiations.ListByUser(ctx, userID)
}

func (s *planService) Get(ctx context.Context, instantiationID string) (*domain.Instantiation, error) {
	return s.instantiations.GetByID(ctx, instantiationID)
}

func (s *planService) Goals(ctx context.Context, instantiationID string) ([]*domain.Goal, error) {
	return s.goals.ListByInstantiation(ctx, instantiationID)
}

func (s *planService) Milestones(ctx context.Context, goalID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByGoal(ctx, goalID)
}

func (s *planService) Tasks(ctx context.Context, goalID string) ([]*domain.Task, error) {
	return s.tasks.ListByGoal(ctx, goalID)
}
