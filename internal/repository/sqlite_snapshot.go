package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
// All operations are read-only; snapshots are written by the assessment
// subsystem, which is outside this engine.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(dbtx db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: dbtx}
}

// ListByUser returns the user's snapshots ordered most-recent-first, each
// with its ratings attached. The scoring layer relies on this ordering for
// latest-snapshot deduplication.
func (r *SQLiteSnapshotRepo) ListByUser(ctx context.Context, userID string) ([]domain.CapabilitySnapshot, error) {
	query := `SELECT id, user_id, assessment_id, completed_at
		FROM capability_snapshots WHERE user_id = ? ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots by user: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.CapabilitySnapshot
	for rows.Next() {
		var s domain.CapabilitySnapshot
		var completedAtStr string
		if err := rows.Scan(&s.ID, &s.UserID, &s.AssessmentID, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		s.CompletedAt, err = time.Parse(time.RFC3339, completedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	for i := range snapshots {
		ratings, err := r.listRatings(ctx, snapshots[i].ID)
		if err != nil {
			return nil, err
		}
		snapshots[i].Ratings = ratings
	}
	return snapshots, nil
}

func (r *SQLiteSnapshotRepo) listRatings(ctx context.Context, snapshotID string) ([]domain.SnapshotRating, error) {
	query := `SELECT id, snapshot_id, question_id, rating FROM snapshot_ratings WHERE snapshot_id = ?`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.SnapshotRating
	for rows.Next() {
		var rt domain.SnapshotRating
		if err := rows.Scan(&rt.ID, &rt.SnapshotID, &rt.QuestionID, &rt.Rating); err != nil {
			return nil, fmt.Errorf("scanning snapshot rating row: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot ratings: %w", err)
	}
	return ratings, nil
}

// QuestionDomains maps every assessment question id to its owning domain id.
func (r *SQLiteSnapshotRepo) QuestionDomains(ctx context.Context) (map[string]string, error) {
	query := `SELECT id, domain_id FROM assessment_questions`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assessment questions: %w", err)
	}
	defer rows.Close()

	mapping := make(map[string]string)
	for rows.Next() {
		var questionID, domainID string
		if err := rows.Scan(&questionID, &domainID); err != nil {
			return nil, fmt.Errorf("scanning assessment question row: %w", err)
		}
		mapping[questionID] = domainID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessment questions: %w", err)
	}
	return mapping, nil
}

func (r *SQLiteSnapshotRepo) GetDomain(ctx context.Context, id string) (*domain.AssessmentDomain, error) {
	query := `SELECT id, assessment_id, name FROM assessment_domains WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var d domain.AssessmentDomain
	if err := row.Scan(&d.ID, &d.AssessmentID, &d.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment domain: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment domain: %w", err)
	}
	return &d, nil
}
