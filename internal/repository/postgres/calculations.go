package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hvackit/ductnoise/internal/repository"
	"github.com/hvackit/ductnoise/pkg/models"
)

// PostgresCalculationRepository implements CalculationRepository for PostgreSQL
type PostgresCalculationRepository struct {
	db *sql.DB
}

// NewPostgresCalculationRepository creates a new PostgreSQL calculation repository
func NewPostgresCalculationRepository(db *sql.DB) repository.CalculationRepository {
	return &PostgresCalculationRepository{db: db}
}

// Create inserts a new calculation record
func (r *PostgresCalculationRepository) Create(ctx context.Context, calc *models.Calculation) error {
	query := `
		INSERT INTO calculations (id, session_id, status, progress, path_count, document_s3_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		calc.ID,
		calc.SessionID,
		calc.Status,
		calc.Progress,
		calc.PathCount,
		calc.DocumentS3Key,
		calc.CreatedAt,
		calc.UpdatedAt)

	return err
}

// GetByID retrieves a calculation by ID
func (r *PostgresCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error) {
	query := `
		SELECT id, session_id, status, progress, path_count, document_s3_key, error_message, created_at, updated_at, completed_at
		FROM calculations
		WHERE id = $1`

	var calc models.Calculation
	var documentKey, errorMsg sql.NullString
	var completedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&calc.ID,
		&calc.SessionID,
		&calc.Status,
		&calc.Progress,
		&calc.PathCount,
		&documentKey,
		&errorMsg,
		&calc.CreatedAt,
		&calc.UpdatedAt,
		&completedAt)

	if err != nil {
		return nil, err
	}

	if documentKey.Valid {
		calc.DocumentS3Key = &documentKey.String
	}
	if errorMsg.Valid {
		calc.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		calc.CompletedAt = &completedAt.Time
	}

	return &calc, nil
}

// GetBySessionID retrieves calculations by session ID, newest first
func (r *PostgresCalculationRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*models.Calculation, error) {
	query := `
		SELECT id, session_id, status, progress, path_count, document_s3_key, error_message, created_at, updated_at, completed_at
		FROM calculations
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []*models.Calculation
	for rows.Next() {
		var calc models.Calculation
		var documentKey, errorMsg sql.NullString
		var completedAt sql.NullTime

		err := rows.Scan(
			&calc.ID,
			&calc.SessionID,
			&calc.Status,
			&calc.Progress,
			&calc.PathCount,
			&documentKey,
			&errorMsg,
			&calc.CreatedAt,
			&calc.UpdatedAt,
			&completedAt)

		if err != nil {
			return nil, err
		}

		if documentKey.Valid {
			calc.DocumentS3Key = &documentKey.String
		}
		if errorMsg.Valid {
			calc.ErrorMsg = &errorMsg.String
		}
		if completedAt.Valid {
			calc.CompletedAt = &completedAt.Time
		}

		calcs = append(calcs, &calc)
	}

	return calcs, rows.Err()
}

// UpdateStatus updates the status and progress of a calculation
func (r *PostgresCalculationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE calculations
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, progress, id)
	return err
}

// UpdateError marks a calculation failed with an error message
func (r *PostgresCalculationRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE calculations
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, errorMsg, id)
	return err
}

// StoreResults stores the per-path results as a JSON document
func (r *PostgresCalculationRepository) StoreResults(ctx context.Context, results *models.CalculationResults) error {
	paths, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal path results: %w", err)
	}

	query := `
		INSERT INTO calculation_results (id, calculation_id, results, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err = r.db.ExecContext(ctx, query,
		results.ID,
		results.CalculationID,
		string(paths),
		results.CreatedAt)

	return err
}

// GetResults retrieves calculation results
func (r *PostgresCalculationRepository) GetResults(ctx context.Context, calculationID uuid.UUID) (*models.CalculationResults, error) {
	query := `
		SELECT id, calculation_id, results, created_at
		FROM calculation_results
		WHERE calculation_id = $1`

	var results models.CalculationResults
	var pathsStr string

	err := r.db.QueryRowContext(ctx, query, calculationID).Scan(
		&results.ID,
		&results.CalculationID,
		&pathsStr,
		&results.CreatedAt)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(pathsStr), &results.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal path results: %w", err)
	}

	return &results, nil
}
