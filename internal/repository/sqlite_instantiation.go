package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/domain"
)

// instantiationColumns is the canonical SELECT column list for instantiations.
const instantiationColumns = `id, user_id, template_id, survey_response_id, pace,
		pace_multiplier, start_date, status, estimated_completion, created_at, updated_at`

// SQLiteInstantiationRepo implements InstantiationRepo using a SQLite database.
type SQLiteInstantiationRepo struct {
	db db.DBTX
}

// NewSQLiteInstantiationRepo creates a new SQLiteInstantiationRepo.
func NewSQLiteInstantiationRepo(dbtx db.DBTX) *SQLiteInstantiationRepo {
	return &SQLiteInstantiationRepo{db: dbtx}
}

func (r *SQLiteInstantiationRepo) Create(ctx context.Context, inst *domain.Instantiation) error {
	query := `INSERT INTO instantiations (id, user_id, template_id, survey_response_id, pace,
		pace_multiplier, start_date, status, estimated_completion, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		inst.ID,
		inst.UserID,
		inst.TemplateID,
		nullableStrToValue(inst.SurveyResponseID),
		string(inst.Pace),
		inst.PaceMultiplier,
		inst.StartDate.Format(time.RFC3339),
		string(inst.Status),
		nullableTimeToString(inst.EstimatedCompletion, dateLayout),
		inst.CreatedAt.Format(time.RFC3339),
		inst.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting instantiation: %w", err)
	}
	return nil
}

func (r *SQLiteInstantiationRepo) GetByID(ctx context.Context, id string) (*domain.Instantiation, error) {
	query := `SELECT ` + instantiationColumns + ` FROM instantiations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	inst, err := scanInstantiation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("instantiation: %w", ErrNotFound)
		}
		return nil, err
	}
	return inst, nil
}

func (r *SQLiteInstantiationRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Instantiation, error) {
	query := `SELECT ` + instantiationColumns + ` FROM instantiations WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing instantiations by user: %w", err)
	}
	defer rows.Close()

	var insts []*domain.Instantiation
	for rows.Next() {
		inst, err := scanInstantiation(rows.Scan)
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating instantiations: %w", err)
	}
	return insts, nil
}

func (r *SQLiteInstantiationRepo) Update(ctx context.Context, inst *domain.Instantiation) error {
	query := `UPDATE instantiations SET status = ?, estimated_completion = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(inst.Status),
		nullableTimeToString(inst.EstimatedCompletion, dateLayout),
		inst.UpdatedAt.Format(time.RFC3339),
		inst.ID,
	)
	if err != nil {
		return fmt.Errorf("updating instantiation: %w", err)
	}
	return nil
}

func scanInstantiation(scan func(dest ...any) error) (*domain.Instantiation, error) {
	var inst domain.Instantiation
	var surveyResponseID, estimatedCompletion sql.NullString
	var paceStr, statusStr, startDateStr, createdAtStr, updatedAtStr string

	err := scan(
		&inst.ID, &inst.UserID, &inst.TemplateID, &surveyResponseID, &paceStr,
		&inst.PaceMultiplier, &startDateStr, &statusStr, &estimatedCompletion,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning instantiation: %w", err)
	}

	inst.Pace = domain.Pace(paceStr)
	inst.Status = domain.InstantiationStatus(statusStr)
	if surveyResponseID.Valid {
		inst.SurveyResponseID = &surveyResponseID.String
	}
	inst.EstimatedCompletion = parseNullableTime(estimatedCompletion, dateLayout)

	var parseErr error
	inst.StartDate, parseErr = time.Parse(time.RFC3339, startDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	inst.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	inst.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &inst, nil
}
