package domain

import "time"

// MilestoneGate is an advisory minimum-score requirement attached to a
// milestone template. It references either a capability-assessment domain or
// an assessment-definition dimension, never both; the creation workflow
// enforces the exclusivity (the schema does not).
type MilestoneGate struct {
	ID                  string
	MilestoneTemplateID string
	DomainID            *string
	DimensionID         *string
	MinScore            float64
	Label               string
	CreatedAt           time.Time
}

// GateOverride is a recorded human waiver of a gate for one user's milestone.
// Overrides are append-only facts; a newer override for the same pair simply
// supersedes evaluation.
type GateOverride struct {
	ID           string
	MilestoneID  string
	GateID       string
	OverriddenBy string
	Reason       string
	CreatedAt    time.Time
}
