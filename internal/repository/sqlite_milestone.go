package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// milestoneColumns is the canonical SELECT column list for milestones.
const milestoneColumns = `id, goal_id, template_id, title, description, order_index, due_date`

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(dbtx db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: dbtx}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, goal_id, template_id, title, description, order_index, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.GoalID,
		m.TemplateID,
		m.Title,
		m.Description,
		m.OrderIndex,
		m.DueDate.Format(dateLayout), // date-only, no time component
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var m domain.Milestone
	var dueDateStr string
	err := row.Scan(&m.ID, &m.GoalID, &m.TemplateID, &m.Title, &m.Description, &m.OrderIndex, &dueDateStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("milestone: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	m.DueDate, err = time.Parse(dateLayout, dueDateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	return &m, nil
}

func (r *SQLiteMilestoneRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE goal_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones by goal: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var dueDateStr string
		if err := rows.Scan(&m.ID, &m.GoalID, &m.TemplateID, &m.Title, &m.Description,
			&m.OrderIndex, &dueDateStr); err != nil {
			return nil, fmt.Errorf("scanning milestone row: %w", err)
		}
		m.DueDate, err = time.Parse(dateLayout, dueDateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing due_date: %w", err)
		}
		milestones = append(milestones, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}
