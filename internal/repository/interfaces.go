package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hvackit/ductnoise/pkg/models"
)

// CalculationRepository defines the interface for calculation data operations
type CalculationRepository interface {
	Create(ctx context.Context, calc *models.Calculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*models.Calculation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	StoreResults(ctx context.Context, results *models.CalculationResults) error
	GetResults(ctx context.Context, calculationID uuid.UUID) (*models.CalculationResults, error)
}
