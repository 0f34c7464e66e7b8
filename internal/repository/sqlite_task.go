package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, goal_id, template_id, title, description, quadrant,
		category, importance, urgency, order_index`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (id, goal_id, template_id, title, description, quadrant,
		category, importance, urgency, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.GoalID,
		task.TemplateID,
		task.Title,
		task.Description,
		string(task.Quadrant),
		task.Category,
		boolToInt(task.Importance),
		boolToInt(task.Urgency),
		task.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE goal_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by goal: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var quadrantStr string
		var importanceInt, urgencyInt int
		if err := rows.Scan(&t.ID, &t.GoalID, &t.TemplateID, &t.Title, &t.Description,
			&quadrantStr, &t.Category, &importanceInt, &urgencyInt, &t.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Quadrant = domain.Quadrant(quadrantStr)
		t.Importance = intToBool(importanceInt)
		t.Urgency = intToBool(urgencyInt)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
