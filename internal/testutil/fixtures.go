package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

// Template tree builders. Trees built here are plain domain values; SeedTree
// writes them into the template store tables for repository/service tests.

type GoalTemplateOption func(*domain.GoalTemplate)

func WithCategory(c string) GoalTemplateOption {
	return func(g *domain.GoalTemplate) {
		g.Category = c
	}
}

func WithTimeframe(tf string) GoalTemplateOption {
	return func(g *domain.GoalTemplate) {
		g.Timeframe = tf
	}
}

func WithGoalOrder(i int) GoalTemplateOption {
	return func(g *domain.GoalTemplate) {
		g.OrderIndex = i
	}
}

func NewGoalTemplate(title string, opts ...GoalTemplateOption) domain.GoalTemplate {
	g := domain.GoalTemplate{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  "career",
		Timeframe: "short_term",
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

type MilestoneTemplateOption func(*domain.MilestoneTemplate)

func WithDays(min, optimal, max *int) MilestoneTemplateOption {
	return func(m *domain.MilestoneTemplate) {
		m.DaysMin = min
		m.DaysOptimal = optimal
		m.DaysMax = max
	}
}

func WithMilestoneOrder(i int) MilestoneTemplateOption {
	return func(m *domain.MilestoneTemplate) {
		m.OrderIndex = i
	}
}

func NewMilestoneTemplate(title string, opts ...MilestoneTemplateOption) domain.MilestoneTemplate {
	m := domain.MilestoneTemplate{
		ID:    uuid.New().String(),
		Title: title,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

type TaskTemplateOption func(*domain.TaskTemplate)

func WithFlags(importance, urgency bool) TaskTemplateOption {
	return func(t *domain.TaskTemplate) {
		t.Importance = importance
		t.Urgency = urgency
	}
}

func WithTaskOrder(i int) TaskTemplateOption {
	return func(t *domain.TaskTemplate) {
		t.OrderIndex = i
	}
}

func NewTaskTemplate(title string, opts ...TaskTemplateOption) domain.TaskTemplate {
	t := domain.TaskTemplate{
		ID:    uuid.New().String(),
		Title: title,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func NewPathTemplate(title string, goals ...domain.GoalTemplate) *domain.PathTemplate {
	return &domain.PathTemplate{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Goals:     goals,
	}
}

// IntPtr returns a pointer to v, for duration hint fixtures.
func IntPtr(v int) *int { return &v }

// SeedTree inserts a full path template tree into the template store.
func SeedTree(t *testing.T, database *sql.DB, tree *domain.PathTemplate) {
	t.Helper()

	mustExec(t, database,
		`INSERT INTO path_templates (id, title, description, created_at) VALUES (?, ?, ?, ?)`,
		tree.ID, tree.Title, tree.Description, tree.CreatedAt.Format(time.RFC3339))

	for _, g := range tree.Goals {
		mustExec(t, database,
			`INSERT INTO goal_templates (id, path_template_id, title, description, category, timeframe, priority, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, tree.ID, g.Title, g.Description, g.Category, g.Timeframe, g.Priority, g.OrderIndex)

		for _, m := range g.Milestones {
			mustExec(t, database,
				`INSERT INTO milestone_templates (id, goal_template_id, title, description, order_index, days_min, days_optimal, days_max)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				m.ID, g.ID, m.Title, m.Description, m.OrderIndex, nullInt(m.DaysMin), nullInt(m.DaysOptimal), nullInt(m.DaysMax))

			for _, task := range m.Tasks {
				mustExec(t, database,
					`INSERT INTO task_templates (id, milestone_template_id, title, description, importance, urgency, order_index)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					task.ID, m.ID, task.Title, task.Description, flag(task.Importance), flag(task.Urgency), task.OrderIndex)
			}
		}
	}
}

// SeedAssessment inserts an assessment with one domain and its questions,
// returning the domain id and question ids.
func SeedAssessment(t *testing.T, database *sql.DB, title, domainName string, questionCount int) (domainID string, questionIDs []string) {
	t.Helper()

	assessmentID := uuid.New().String()
	mustExec(t, database, `INSERT INTO assessments (id, title) VALUES (?, ?)`, assessmentID, title)

	domainID = uuid.New().String()
	mustExec(t, database,
		`INSERT INTO assessment_domains (id, assessment_id, name) VALUES (?, ?, ?)`,
		domainID, assessmentID, domainName)

	for i := 0; i < questionCount; i++ {
		questionID := uuid.New().String()
		mustExec(t, database,
			`INSERT INTO assessment_questions (id, domain_id, prompt) VALUES (?, ?, ?)`,
			questionID, domainID, "")
		questionIDs = append(questionIDs, questionID)
	}
	return domainID, questionIDs
}

// SeedSnapshot inserts one completed snapshot with ratings keyed by question id.
func SeedSnapshot(t *testing.T, database *sql.DB, userID, domainID string, completedAt time.Time, ratings map[string]float64) string {
	t.Helper()

	var assessmentID string
	err := database.QueryRow(`SELECT assessment_id FROM assessment_domains WHERE id = ?`, domainID).Scan(&assessmentID)
	if err != nil {
		t.Fatalf("resolving assessment for domain %s: %v", domainID, err)
	}

	snapshotID := uuid.New().String()
	mustExec(t, database,
		`INSERT INTO capability_snapshots (id, user_id, assessment_id, completed_at) VALUES (?, ?, ?, ?)`,
		snapshotID, userID, assessmentID, completedAt.Format(time.RFC3339))

	for questionID, rating := range ratings {
		mustExec(t, database,
			`INSERT INTO snapshot_ratings (id, snapshot_id, question_id, rating) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), snapshotID, questionID, rating)
	}
	return snapshotID
}

func mustExec(t *testing.T, database *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := database.Exec(query, args...); err != nil {
		t.Fatalf("seeding fixture: %v", err)
	}
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
