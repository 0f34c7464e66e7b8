package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// SQLitePathTemplateRepo implements PathTemplateRepo using a SQLite database.
type SQLitePathTemplateRepo struct {
	db db.DBTX
}

// NewSQLitePathTemplateRepo creates a new SQLitePathTemplateRepo.
func NewSQLitePathTemplateRepo(dbtx db.DBTX) *SQLitePathTemplateRepo {
	return &SQLitePathTemplateRepo{db: dbtx}
}

func (r *SQLitePathTemplateRepo) List(ctx context.Context) ([]*domain.PathTemplate, error) {
	query := `SELECT id, title, description, created_at FROM path_templates ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing path templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.PathTemplate
	for rows.Next() {
		pt, err := scanPathTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating path templates: %w", err)
	}
	return templates, nil
}

func (r *SQLitePathTemplateRepo) GetTree(ctx context.Context, id string) (*domain.PathTemplate, error) {
	query := `SELECT id, title, description, created_at FROM path_templates WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var pt domain.PathTemplate
	var createdAtStr string
	if err := row.Scan(&pt.ID, &pt.Title, &pt.Description, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("path template %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning path template: %w", err)
	}
	var parseErr error
	pt.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	goals, err := r.listGoalTemplates(ctx, pt.ID)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		milestones, err := r.listMilestoneTemplates(ctx, goals[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range milestones {
			tasks, err := r.listTaskTemplates(ctx, milestones[j].ID)
			if err != nil {
				return nil, err
			}
			milestones[j].Tasks = tasks
		}
		goals[i].Milestones = milestones
	}
	pt.Goals = goals
	return &pt, nil
}

func (r *SQLitePathTemplateRepo) listGoalTemplates(ctx context.Context, pathTemplateID string) ([]domain.GoalTemplate, error) {
	query := `SELECT id, path_template_id, title, description, category, timeframe, priority, order_index
		FROM goal_templates WHERE path_template_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, pathTemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing goal templates: %w", err)
	}
	defer rows.Close()

	var goals []domain.GoalTemplate
	for rows.Next() {
		var g domain.GoalTemplate
		if err := rows.Scan(&g.ID, &g.PathTemplateID, &g.Title, &g.Description,
			&g.Category, &g.Timeframe, &g.Priority, &g.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning goal template row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal templates: %w", err)
	}
	return goals, nil
}

func (r *SQLitePathTemplateRepo) listMilestoneTemplates(ctx context.Context, goalTemplateID string) ([]domain.MilestoneTemplate, error) {
	query := `SELECT id, goal_template_id, title, description, order_index, days_min, days_optimal, days_max
		FROM milestone_templates WHERE goal_template_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, goalTemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing milestone templates: %w", err)
	}
	defer rows.Close()

	var milestones []domain.MilestoneTemplate
	for rows.Next() {
		var m domain.MilestoneTemplate
		var daysMin, daysOptimal, daysMax sql.NullInt64
		if err := rows.Scan(&m.ID, &m.GoalTemplateID, &m.Title, &m.Description,
			&m.OrderIndex, &daysMin, &daysOptimal, &daysMax); err != nil {
			return nil, fmt.Errorf("scanning milestone template row: %w", err)
		}
		if daysMin.Valid {
			v := int(daysMin.Int64)
			m.DaysMin = &v
		}
		if daysOptimal.Valid {
			v := int(daysOptimal.Int64)
			m.DaysOptimal = &v
		}
		if daysMax.Valid {
			v := int(daysMax.Int64)
			m.DaysMax = &v
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestone templates: %w", err)
	}
	return milestones, nil
}

func (r *SQLitePathTemplateRepo) listTaskTemplates(ctx context.Context, milestoneTemplateID string) ([]domain.TaskTemplate, error) {
	query := `SELECT id, milestone_template_id, title, description, importance, urgency, order_index
		FROM task_templates WHERE milestone_template_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, milestoneTemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing task templates: %w", err)
	}
	defer rows.Close()

	var tasks []domain.TaskTemplate
	for rows.Next() {
		var t domain.TaskTemplate
		var importanceInt, urgencyInt int
		if err := rows.Scan(&t.ID, &t.MilestoneTemplateID, &t.Title, &t.Description,
			&importanceInt, &urgencyInt, &t.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning task template row: %w", err)
		}
		t.Importance = intToBool(importanceInt)
		t.Urgency = intToBool(urgencyInt)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task templates: %w", err)
	}
	return tasks, nil
}

func scanPathTemplate(rows *sql.Rows) (*domain.PathTemplate, error) {
	var pt domain.PathTemplate
	var createdAtStr string
	if err := rows.Scan(&pt.ID, &pt.Title, &pt.Description, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning path template row: %w", err)
	}
	t, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	pt.CreatedAt = t
	return &pt, nil
}
