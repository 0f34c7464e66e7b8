package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// ── template store (read-only to the engine) ─────────────────────────

	`CREATE TABLE IF NOT EXISTS path_templates (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goal_templates (
		id               TEXT PRIMARY KEY,
		path_template_id TEXT NOT NULL REFERENCES path_templates(id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT '',
		timeframe        TEXT NOT NULL DEFAULT '',
		priority         INTEGER NOT NULL DEFAULT 0,
		order_index      INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goal_templates_path ON goal_templates(path_template_id)`,

	`CREATE TABLE IF NOT EXISTS milestone_templates (
		id               TEXT PRIMARY KEY,
		goal_template_id TEXT NOT NULL REFERENCES goal_templates(id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		order_index      INTEGER NOT NULL DEFAULT 0,
		days_min         INTEGER,
		days_optimal     INTEGER,
		days_max         INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_milestone_templates_goal ON milestone_templates(goal_template_id)`,

	`CREATE TABLE IF NOT EXISTS task_templates (
		id                    TEXT PRIMARY KEY,
		milestone_template_id TEXT NOT NULL REFERENCES milestone_templates(id) ON DELETE CASCADE,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		importance            INTEGER NOT NULL DEFAULT 0,
		urgency               INTEGER NOT NULL DEFAULT 0,
		order_index           INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_templates_milestone ON task_templates(milestone_template_id)`,

	// ── instantiated plans ───────────────────────────────────────────────

	`CREATE TABLE IF NOT EXISTS instantiations (
		id                   TEXT PRIMARY KEY,
		user_id              TEXT NOT NULL,
		template_id          TEXT NOT NULL REFERENCES path_templates(id),
		survey_response_id   TEXT,
		pace                 TEXT NOT NULL DEFAULT 'standard'
		                     CHECK(pace IN ('intensive','standard','part_time')),
		pace_multiplier      REAL NOT NULL DEFAULT 1.0,
		start_date           TEXT NOT NULL,
		status               TEXT NOT NULL DEFAULT 'building'
		                     CHECK(status IN ('building','active','failed')),
		estimated_completion TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_instantiations_user ON instantiations(user_id)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		instantiation_id TEXT NOT NULL REFERENCES instantiations(id) ON DELETE CASCADE,
		template_id      TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT 'general',
		timeframe        TEXT NOT NULL DEFAULT '',
		priority         INTEGER NOT NULL DEFAULT 0,
		order_index      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_instantiation ON goals(instantiation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		template_id TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		due_date    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_goal ON milestones(goal_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		template_id TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		quadrant    TEXT NOT NULL
		            CHECK(quadrant IN ('important_urgent','important_not_urgent',
		                               'not_important_urgent','not_important_not_urgent')),
		category    TEXT NOT NULL DEFAULT '',
		importance  INTEGER NOT NULL DEFAULT 0,
		urgency     INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id)`,

	// ── gates ────────────────────────────────────────────────────────────

	`CREATE TABLE IF NOT EXISTS milestone_gates (
		id                    TEXT PRIMARY KEY,
		milestone_template_id TEXT NOT NULL REFERENCES milestone_templates(id) ON DELETE CASCADE,
		domain_id             TEXT,
		dimension_id          TEXT,
		min_score             REAL NOT NULL,
		label                 TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_gates_milestone_template ON milestone_gates(milestone_template_id)`,

	`CREATE TABLE IF NOT EXISTS gate_overrides (
		id            TEXT PRIMARY KEY,
		milestone_id  TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		gate_id       TEXT NOT NULL REFERENCES milestone_gates(id) ON DELETE CASCADE,
		overridden_by TEXT NOT NULL,
		reason        TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_overrides_milestone ON gate_overrides(milestone_id)`,

	// ── assessments ──────────────────────────────────────────────────────

	`CREATE TABLE IF NOT EXISTS assessments (
		id    TEXT PRIMARY KEY,
		title TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_domains (
		id            TEXT PRIMARY KEY,
		assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		name          TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_domains_assessment ON assessment_domains(assessment_id)`,

	`CREATE TABLE IF NOT EXISTS assessment_questions (
		id        TEXT PRIMARY KEY,
		domain_id TEXT NOT NULL REFERENCES assessment_domains(id) ON DELETE CASCADE,
		prompt    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_domain ON assessment_questions(domain_id)`,

	`CREATE TABLE IF NOT EXISTS capability_snapshots (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		completed_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_user ON capability_snapshots(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_completed ON capability_snapshots(completed_at)`,

	`CREATE TABLE IF NOT EXISTS snapshot_ratings (
		id          TEXT PRIMARY KEY,
		snapshot_id TEXT NOT NULL REFERENCES capability_snapshots(id) ON DELETE CASCADE,
		question_id TEXT NOT NULL REFERENCES assessment_questions(id),
		rating      REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ratings_snapshot ON snapshot_ratings(snapshot_id)`,
}
