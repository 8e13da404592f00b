package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hvackit/ductnoise/internal/engine"
	"github.com/hvackit/ductnoise/internal/repository"
	"github.com/hvackit/ductnoise/internal/storage"
	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/rs/zerolog/log"
)

type ProcessingService interface {
	ProcessCalculation(ctx context.Context, calculationID uuid.UUID) error
}

type processingService struct {
	s3         storage.S3Service
	repository repository.CalculationRepository
	engine     *engine.Engine
	workers    int // 0 lets the engine size the worker pool itself
}

func NewProcessingService(s3Service storage.S3Service, repo repository.CalculationRepository, eng *engine.Engine, workers int) ProcessingService {
	return &processingService{
		s3:         s3Service,
		repository: repo,
		engine:     eng,
		workers:    workers,
	}
}

func (s *processingService) ProcessCalculation(ctx context.Context, calculationID uuid.UUID) error {
	// Step 1: Update to processing status
	if err := s.repository.UpdateStatus(ctx, calculationID, "processing", 10); err != nil {
		return err
	}

	// Step 2: Get calculation details
	calc, err := s.repository.GetByID(ctx, calculationID)
	if err != nil {
		return err
	}

	if calc.DocumentS3Key == nil {
		s.repository.UpdateError(ctx, calculationID, "No path set document was uploaded")
		return nil // Don't return error, status is updated to failed
	}

	// Step 3: Download the path set document
	if err := s.repository.UpdateStatus(ctx, calculationID, "processing", 20); err != nil {
		return err
	}

	document, err := s.s3.DownloadFile(ctx, *calc.DocumentS3Key)
	if err != nil {
		s.repository.UpdateError(ctx, calculationID, "Failed to download path set document")
		return nil // Don't return error, status is updated to failed
	}

	// Step 4: Parse the document
	var pathSet models.PathSet
	if err := json.Unmarshal(document, &pathSet); err != nil {
		s.repository.UpdateError(ctx, calculationID, fmt.Sprintf("Path set document is not valid JSON: %v", err))
		return nil
	}

	if len(pathSet.Paths) == 0 {
		s.repository.UpdateError(ctx, calculationID, "Path set document contains no paths")
		return nil
	}

	if calc.PathCount > 0 && len(pathSet.Paths) != calc.PathCount {
		log.Warn().
			Str("calculation_id", calc.ID).
			Int("declared", calc.PathCount).
			Int("uploaded", len(pathSet.Paths)).
			Msg("uploaded path count differs from declared count")
	}

	// Step 5: Calculate every path
	if err := s.repository.UpdateStatus(ctx, calculationID, "processing", 50); err != nil {
		return err
	}

	pathResults := s.engine.CalculateBatch(ctx, pathSet.Paths, s.workers)

	failed := 0
	for i := range pathResults {
		if pathResults[i].Error != "" {
			failed++
		}
	}
	if failed > 0 {
		log.Warn().
			Str("calculation_id", calc.ID).
			Int("failed_paths", failed).
			Int("total_paths", len(pathResults)).
			Msg("some paths could not be calculated")
	}

	// Step 6: Store results
	if err := s.repository.UpdateStatus(ctx, calculationID, "processing", 80); err != nil {
		return err
	}

	results := &models.CalculationResults{
		ID:            uuid.New().String(),
		CalculationID: calc.ID,
		Results:       pathResults,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repository.StoreResults(ctx, results); err != nil {
		return err
	}

	// Step 7: Delete the uploaded document, results now live in the database
	if err := s.repository.UpdateStatus(ctx, calculationID, "processing", 90); err != nil {
		return err
	}

	if err := s.s3.DeleteFile(ctx, *calc.DocumentS3Key); err != nil {
		log.Warn().
			Str("calculation_id", calc.ID).
			Err(err).
			Msg("failed to delete processed document")
	}

	// Step 8: Mark complete
	if err := s.repository.UpdateStatus(ctx, calculationID, "completed", 100); err != nil {
		return err
	}

	return nil
}
