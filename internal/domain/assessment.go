package domain

import "time"

type Assessment struct {
	ID    string
	Title string
}

// AssessmentDomain is a scored dimension of a capability assessment, e.g.
// "Communication". Gates reference domains by id.
type AssessmentDomain struct {
	ID           string
	AssessmentID string
	Name         string
}

type AssessmentQuestion struct {
	ID       string
	DomainID string
	Prompt   string
}

// CapabilitySnapshot is one completed assessment run for a user, carrying
// per-question ratings. Snapshots are immutable once completed.
type CapabilitySnapshot struct {
	ID           string
	UserID       string
	AssessmentID string
	CompletedAt  time.Time
	Ratings      []SnapshotRating
}

type SnapshotRating struct {
	ID         string
	SnapshotID string
	QuestionID string
	Rating     float64
}
