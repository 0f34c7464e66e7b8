package domain

import "time"

// Instantiation is one concrete, user-owned expansion of a path template at a
// chosen start date and pace. Exactly one row is created per commit; after
// the walk completes the estimated completion date is set and the status
// flips from building to active.
type Instantiation struct {
	ID                 string
	UserID             string
	TemplateID         string
	SurveyResponseID   *string
	Pace               Pace
	PaceMultiplier     float64
	StartDate          time.Time
	Status             InstantiationStatus
	EstimatedCompletion *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Goal is an instantiated goal. Category and timeframe are normalized at
// creation; the user owns the row thereafter.
type Goal struct {
	ID              string
	UserID          string
	InstantiationID string
	TemplateID      string
	Title           string
	Description     string
	Category        string
	Timeframe       Timeframe
	Priority        int
	OrderIndex      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Milestone is an instantiated milestone with a computed, date-only due date.
type Milestone struct {
	ID          string
	GoalID      string
	TemplateID  string
	Title       string
	Description string
	OrderIndex  int
	DueDate     time.Time
}

// Task is an instantiated task. Tasks are flattened to goal level (no
// milestone back-reference); category is inherited from the parent goal
// template's raw value without re-validation.
type Task struct {
	ID          string
	GoalID      string
	TemplateID  string
	Title       string
	Description string
	Quadrant    Quadrant
	Category    string
	Importance  bool
	Urgency     bool
	OrderIndex  int
}
