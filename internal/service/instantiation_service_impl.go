package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/pacing"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/google/uuid"
)

type instantiationService struct {
	templates repository.PathTemplateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewInstantiationService(
	templates repository.PathTemplateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) InstantiationService {
	return &instantiationService{
		templates: templates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *instantiationService) Instantiate(ctx context.Context, req InstantiateRequest) (result *InstantiationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"template": req.TemplateID,
		"user":     req.UserID,
		"pace":     string(req.Pace),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "instantiate-path",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	// Resolve the full tree before any write; a missing template aborts here.
	tree, err := s.templates.GetTree(ctx, req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("loading path template: %w", err)
	}
	sortTree(tree)

	now := time.Now().UTC()
	inst := &domain.Instantiation{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		TemplateID:       tree.ID,
		SurveyResponseID: req.SurveyResponseID,
		Pace:             req.Pace,
		PaceMultiplier:   pacing.Multiplier(req.Pace),
		StartDate:        req.StartDate,
		Status:           domain.InstantiationBuilding,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var goalsCreated, milestonesCreated, tasksCreated int
	cursor := req.StartDate

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txInstantiations := repository.NewSQLiteInstantiationRepo(tx)
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		if err := txInstantiations.Create(ctx, inst); err != nil {
			return fmt.Errorf("creating instantiation: %w", err)
		}

		for _, gt := range tree.Goals {
			goal := &domain.Goal{
				ID:              uuid.New().String(),
				UserID:          req.UserID,
				InstantiationID: inst.ID,
				TemplateID:      gt.ID,
				Title:           gt.Title,
				Description:     gt.Description,
				Category:        domain.NormalizeCategory(gt.Category),
				Timeframe:       domain.NormalizeTimeframe(gt.Timeframe),
				Priority:        gt.Priority,
				OrderIndex:      gt.OrderIndex,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := txGoals.Create(ctx, goal); err != nil {
				return fmt.Errorf("creating goal '%s': %w", gt.Title, err)
			}
			goalsCreated++

			for _, mt := range gt.Milestones {
				// Single shared cursor, advanced once per milestone; the
				// advanced date is the due date, so committed plans match
				// the estimator exactly.
				cursor = cursor.AddDate(0, 0, pacing.ResolveDays(mt, req.Pace))

				milestone := &domain.Milestone{
					ID:          uuid.New().String(),
					GoalID:      goal.ID,
					TemplateID:  mt.ID,
					Title:       mt.Title,
					Description: mt.Description,
					OrderIndex:  mt.OrderIndex,
					DueDate:     cursor,
				}
				if err := txMilestones.Create(ctx, milestone); err != nil {
					return fmt.Errorf("creating milestone '%s': %w", mt.Title, err)
				}
				milestonesCreated++

				for _, tt := range mt.Tasks {
					task := &domain.Task{
						ID:          uuid.New().String(),
						GoalID:      goal.ID,
						TemplateID:  tt.ID,
						Title:       tt.Title,
						Description: tt.Description,
						Quadrant:    domain.QuadrantFor(tt.Importance, tt.Urgency),
						Category:    gt.Category, // raw template category, not re-validated
						Importance:  tt.Importance,
						Urgency:     tt.Urgency,
						OrderIndex:  tt.OrderIndex,
					}
					if err := txTasks.Create(ctx, task); err != nil {
						return fmt.Errorf("creating task '%s': %w", tt.Title, err)
					}
					tasksCreated++
				}
			}
		}

		estimated := cursor
		inst.EstimatedCompletion = &estimated
		inst.Status = domain.InstantiationActive
		inst.UpdatedAt = time.Now().UTC()
		if err := txInstantiations.Update(ctx, inst); err != nil {
			return fmt.Errorf("finalizing instantiation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["goal_count"] = goalsCreated
	fields["milestone_count"] = milestonesCreated
	fields["task_count"] = tasksCreated

	result = &InstantiationResult{
		InstantiationID:     inst.ID,
		GoalsCreated:        goalsCreated,
		MilestonesCreated:   milestonesCreated,
		TasksCreated:        tasksCreated,
		EstimatedCompletion: cursor,
	}
	return result, nil
}

func (s *instantiationService) Estimate(ctx context.Context, templateID string, start time.Time, pace domain.Pace) (time.Time, error) {
	tree, err := s.templates.GetTree(ctx, templateID)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading path template: %w", err)
	}
	sortTree(tree)
	return pacing.EstimateCompletion(tree.Goals, start, pace), nil
}

// sortTree re-sorts every level by order index. Template storage order is
// not trusted.
func sortTree(tree *domain.PathTemplate) {
	sort.SliceStable(tree.Goals, func(i, j int) bool {
		return tree.Goals[i].OrderIndex < tree.Goals[j].OrderIndex
	})
	for gi := range tree.Goals {
		milestones := tree.Goals[gi].Milestones
		sort.SliceStable(milestones, func(i, j int) bool {
			return milestones[i].OrderIndex < milestones[j].OrderIndex
		})
		for mi := range milestones {
			tasks := milestones[mi].Tasks
			sort.SliceStable(tasks, func(i, j int) bool {
				return tasks[i].OrderIndex < tasks[j].OrderIndex
			})
		}
	}
}
