package domain

import "time"

// PathTemplate is the root of a reusable development path definition:
// ordered goals, each owning ordered milestones, each owning ordered tasks.
// Templates are administrator-authored and read-only to the engine.
type PathTemplate struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	Goals       []GoalTemplate
}

type GoalTemplate struct {
	ID             string
	PathTemplateID string
	Title          string
	Description    string
	Category       string
	Timeframe      string
	Priority       int
	OrderIndex     int
	Milestones     []MilestoneTemplate
}

// MilestoneTemplate carries three optional duration hints in days. The
// daysMin <= daysOptimal <= daysMax ordering is not enforced anywhere;
// pacing treats the hints as untrusted input.
type MilestoneTemplate struct {
	ID             string
	GoalTemplateID string
	Title          string
	Description    string
	OrderIndex     int
	DaysMin        *int
	DaysOptimal    *int
	DaysMax        *int
	Tasks          []TaskTemplate
}

type TaskTemplate struct {
	ID                  string
	MilestoneTemplateID string
	Title               string
	Description         string
	Importance          bool
	Urgency             bool
	OrderIndex          int
}
