package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// goalColumns is the canonical SELECT column list for goals.
const goalColumns = `id, user_id, instantiation_id, template_id, title, description,
		category, timeframe, priority, order_index, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(dbtx db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: dbtx}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, user_id, instantiation_id, template_id, title, description,
		category, timeframe, priority, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		g.InstantiationID,
		g.TemplateID,
		g.Title,
		g.Description,
		g.Category,
		string(g.Timeframe),
		g.Priority,
		g.OrderIndex,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) ListByInstantiation(ctx context.Context, instantiationID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE instantiation_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, instantiationID)
	if err != nil {
		return nil, fmt.Errorf("listing goals by instantiation: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var g domain.Goal
		var timeframeStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.InstantiationID, &g.TemplateID, &g.Title, &g.Description,
			&g.Category, &timeframeStr, &g.Priority, &g.OrderIndex, &createdAtStr, &updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		g.Timeframe = domain.Timeframe(timeframeStr)
		var parseErr error
		g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		g.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}
