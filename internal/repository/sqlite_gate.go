package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// gateColumns is the canonical SELECT column list for milestone_gates.
const gateColumns = `id, milestone_template_id, domain_id, dimension_id, min_score, label, created_at`

// SQLiteGateRepo implements GateRepo using a SQLite database.
type SQLiteGateRepo struct {
	db db.DBTX
}

// NewSQLiteGateRepo creates a new SQLiteGateRepo.
func NewSQLiteGateRepo(dbtx db.DBTX) *SQLiteGateRepo {
	return &SQLiteGateRepo{db: dbtx}
}

func (r *SQLiteGateRepo) Create(ctx context.Context, g *domain.MilestoneGate) error {
	query := `INSERT INTO milestone_gates (id, milestone_template_id, domain_id, dimension_id,
		min_score, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.MilestoneTemplateID,
		nullableStrToValue(g.DomainID),
		nullableStrToValue(g.DimensionID),
		g.MinScore,
		g.Label,
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone gate: %w", err)
	}
	return nil
}

func (r *SQLiteGateRepo) GetByID(ctx context.Context, id string) (*domain.MilestoneGate, error) {
	query := `SELECT ` + gateColumns + ` FROM milestone_gates WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	g, err := scanGate(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("milestone gate: %w", ErrNotFound)
		}
		return nil, err
	}
	return g, nil
}

func (r *SQLiteGateRepo) ListByMilestoneTemplate(ctx context.Context, milestoneTemplateID string) ([]*domain.MilestoneGate, error) {
	query := `SELECT ` + gateColumns + ` FROM milestone_gates WHERE milestone_template_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, milestoneTemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing gates by milestone template: %w", err)
	}
	defer rows.Close()

	var gates []*domain.MilestoneGate
	for rows.Next() {
		g, err := scanGate(rows.Scan)
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestone gates: %w", err)
	}
	return gates, nil
}

func scanGate(scan func(dest ...any) error) (*domain.MilestoneGate, error) {
	var g domain.MilestoneGate
	var domainID, dimensionID sql.NullString
	var createdAtStr string

	err := scan(&g.ID, &g.MilestoneTemplateID, &domainID, &dimensionID,
		&g.MinScore, &g.Label, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone gate: %w", err)
	}

	if domainID.Valid {
		g.DomainID = &domainID.String
	}
	if dimensionID.Valid {
		g.DimensionID = &dimensionID.String
	}
	g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &g, nil
}

// SQLiteGateOverrideRepo implements GateOverrideRepo using a SQLite database.
// Overrides are append-only; there is no update or delete.
type SQLiteGateOverrideRepo struct {
	db db.DBTX
}

// NewSQLiteGateOverrideRepo creates a new SQLiteGateOverrideRepo.
func NewSQLiteGateOverrideRepo(dbtx db.DBTX) *SQLiteGateOverrideRepo {
	return &SQLiteGateOverrideRepo{db: dbtx}
}

func (r *SQLiteGateOverrideRepo) Create(ctx context.Context, o *domain.GateOverride) error {
	query := `INSERT INTO gate_overrides (id, milestone_id, gate_id, overridden_by, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.MilestoneID,
		o.GateID,
		o.OverriddenBy,
		o.Reason,
		o.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting gate override: %w", err)
	}
	return nil
}

func (r *SQLiteGateOverrideRepo) ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.GateOverride, error) {
	query := `SELECT id, milestone_id, gate_id, overridden_by, reason, created_at
		FROM gate_overrides WHERE milestone_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing gate overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*domain.GateOverride
	for rows.Next() {
		var o domain.GateOverride
		var createdAtStr string
		if err := rows.Scan(&o.ID, &o.MilestoneID, &o.GateID, &o.OverriddenBy,
			&o.Reason, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning gate override row: %w", err)
		}
		o.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		overrides = append(overrides, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gate overrides: %w", err)
	}
	return overrides, nil
}
