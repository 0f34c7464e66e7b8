package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/scoring"
	"github.com/google/uuid"
)

type gateService struct {
	gates      repository.GateRepo
	overrides  repository.GateOverrideRepo
	milestones repository.MilestoneRepo
	snapshots  repository.SnapshotRepo
	observer   UseCaseObserver
}

func NewGateService(
	gates repository.GateRepo,
	overrides repository.GateOverrideRepo,
	milestones repository.MilestoneRepo,
	snapshots repository.SnapshotRepo,
	observers ...UseCaseObserver,
) GateService {
	return &gateService{
		gates:      gates,
		overrides:  overrides,
		milestones: milestones,
		snapshots:  snapshots,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *gateService) CreateGate(ctx context.Context, g *domain.MilestoneGate) error {
	// Exactly one of domain/dimension; the schema does not enforce this.
	if (g.DomainID == nil) == (g.DimensionID == nil) {
		return fmt.Errorf("gate must reference exactly one of an assessment domain or a dimension")
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	if g.Label == "" {
		label, err := s.autoLabel(ctx, g)
		if err != nil {
			return err
		}
		g.Label = label
	}
	if err := s.gates.Create(ctx, g); err != nil {
		return fmt.Errorf("creating milestone gate: %w", err)
	}
	return nil
}

func (s *gateService) autoLabel(ctx context.Context, g *domain.MilestoneGate) (string, error) {
	if g.DomainID != nil {
		d, err := s.snapshots.GetDomain(ctx, *g.DomainID)
		if err != nil {
			return "", fmt.Errorf("resolving gate domain: %w", err)
		}
		return fmt.Sprintf("%s ≥ %g", d.Name, g.MinScore), nil
	}
	return fmt.Sprintf("Dimension %s ≥ %g", *g.DimensionID, g.MinScore), nil
}

func (s *gateService) RecordOverride(ctx context.Context, o *domain.GateOverride) error {
	if o.Reason == "" {
		return fmt.Errorf("override reason is required")
	}
	if o.OverriddenBy == "" {
		return fmt.Errorf("overriding staff member is required")
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if err := s.overrides.Create(ctx, o); err != nil {
		return fmt.Errorf("recording gate override: %w", err)
	}
	return nil
}

func (s *gateService) EvaluateMilestone(ctx context.Context, userID, milestoneID string) (evals []scoring.GateEvaluation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":      userID,
		"milestone": milestoneID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "evaluate-gates",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	milestone, err := s.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("loading milestone: %w", err)
	}

	gates, err := s.gates.ListByMilestoneTemplate(ctx, milestone.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing gates: %w", err)
	}
	fields["gate_count"] = len(gates)
	if len(gates) == 0 {
		return nil, nil
	}

	overrides, err := s.overrides.ListByMilestone(ctx, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	// Newest-first listing; the first override seen per gate supersedes.
	overrideByGate := make(map[string]*domain.GateOverride, len(overrides))
	for _, o := range overrides {
		if _, ok := overrideByGate[o.GateID]; !ok {
			overrideByGate[o.GateID] = o
		}
	}

	snapshots, err := s.snapshots.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	questionDomains, err := s.snapshots.QuestionDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading question domains: %w", err)
	}
	scores := scoring.LatestDomainScores(snapshots, questionDomains)

	evals = make([]scoring.GateEvaluation, 0, len(gates))
	for _, gate := range gates {
		var currentScore *float64
		// Dimension-based gates never resolve a score and read as unknown.
		if gate.DomainID != nil {
			if ds, ok := scores[*gate.DomainID]; ok {
				v := ds.Current
				currentScore = &v
			}
		}
		evals = append(evals, scoring.EvaluateGate(*gate, currentScore, overrideByGate[gate.ID]))
	}
	return evals, nil
}
