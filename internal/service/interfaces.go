package service

import (
	"context"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/scoring"
)

// InstantiateRequest describes one plan-expansion commit.
type InstantiateRequest struct {
	UserID           string
	TemplateID       string
	SurveyResponseID *string
	StartDate        time.Time
	Pace             domain.Pace
}

// InstantiationResult holds the outcome of a committed plan expansion.
type InstantiationResult struct {
	InstantiationID     string
	GoalsCreated        int
	MilestonesCreated   int
	TasksCreated        int
	EstimatedCompletion time.Time
}

type InstantiationService interface {
	// Instantiate expands the template into a dated personal plan and
	// commits it. The whole walk is transactional: the first failing write
	// rolls everything back.
	Instantiate(ctx context.Context, req InstantiateRequest) (*InstantiationResult, error)
	// Estimate computes the completion date the same walk would produce,
	// without creating any data. Used for preview before commit.
	Estimate(ctx context.Context, templateID string, start time.Time, pace domain.Pace) (time.Time, error)
}

type GateService interface {
	CreateGate(ctx context.Context, g *domain.MilestoneGate) error
	RecordOverride(ctx context.Context, o *domain.GateOverride) error
	// EvaluateMilestone recomputes gate status for every gate on the
	// milestone's template. Status is never persisted; gates are advisory.
	EvaluateMilestone(ctx context.Context, userID, milestoneID string) ([]scoring.GateEvaluation, error)
}

type TemplateService interface {
	List(ctx context.Context) ([]*domain.PathTemplate, error)
	Get(ctx context.Context, id string) (*domain.PathTemplate, error)
}

type PlanService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Instantiation, error)
	Get(ctx context.Context, instantiationID string) (*domain.Instantiation, error)
	Goals(ctx context.Context, instantiationID string) ([]*domain.Goal, error)
	Milestones(ctx context.Context, goalID string) ([]*domain.Milestone, error)
	Tasks(ctx context.Context, goalID string) ([]*domain.Task, error)
}
