package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/compass/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches no rows.
var ErrNotFound = errors.New("not found")

// PathTemplateRepo reads the template store. Templates are externally
// authored; this engine never writes them.
type PathTemplateRepo interface {
	// GetTree fetches a full path template with nested goals, milestones and
	// tasks. Each level is returned in stored order, but callers must not
	// trust it (the engine re-sorts defensively).
	GetTree(ctx context.Context, id string) (*domain.PathTemplate, error)
	List(ctx context.Context) ([]*domain.PathTemplate, error)
}

type InstantiationRepo interface {
	Create(ctx context.Context, inst *domain.Instantiation) error
	GetByID(ctx context.Context, id string) (*domain.Instantiation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Instantiation, error)
	Update(ctx context.Context, inst *domain.Instantiation) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	ListByInstantiation(ctx context.Context, instantiationID string) ([]*domain.Goal, error)
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error)
}

type TaskRepo interface {
	Create(ctx context.Context, task *domain.Task) error
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Task, error)
}

type GateRepo interface {
	Create(ctx context.Context, g *domain.MilestoneGate) error
	GetByID(ctx context.Context, id string) (*domain.MilestoneGate, error)
	ListByMilestoneTemplate(ctx context.Context, milestoneTemplateID string) ([]*domain.MilestoneGate, error)
}

type GateOverrideRepo interface {
	Create(ctx context.Context, o *domain.GateOverride) error
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.GateOverride, error)
}

// SnapshotRepo reads capability assessment data for scoring.
type SnapshotRepo interface {
	// ListByUser returns a user's snapshots ordered by completion time
	// descending, each carrying its ratings.
	ListByUser(ctx context.Context, userID string) ([]domain.CapabilitySnapshot, error)
	// QuestionDomains maps every assessment question id to its owning domain id.
	QuestionDomains(ctx context.Context) (map[string]string, error)
	GetDomain(ctx context.Context, id string) (*domain.AssessmentDomain, error)
}
