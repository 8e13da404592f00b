package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/hvackit/ductnoise/internal/engine"
	"github.com/hvackit/ductnoise/internal/processing"
	"github.com/hvackit/ductnoise/internal/repository"
	"github.com/hvackit/ductnoise/internal/storage"
	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/rs/zerolog/log"
)

// CalculationHandler handles calculation-related HTTP requests
type CalculationHandler struct {
	repo          repository.CalculationRepository
	s3Service     storage.S3Service
	processingSvc processing.ProcessingService
	engine        *engine.Engine
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(repo repository.CalculationRepository, s3Service storage.S3Service, processingSvc processing.ProcessingService, eng *engine.Engine) *CalculationHandler {
	return &CalculationHandler{
		repo:          repo,
		s3Service:     s3Service,
		processingSvc: processingSvc,
		engine:        eng,
	}
}

// CalculatePath calculates a single path synchronously
func (h *CalculationHandler) CalculatePath(ctx context.Context, req *models.CalculatePathRequest) (*models.CalculatePathResponse, error) {
	log.Info().Str("path", req.Body.Name).Int("components", len(req.Body.Components)).Msg("Synchronous path calculation requested")

	result, err := h.engine.CalculatePath(req.Body)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Path cannot be ordered into a source-to-terminal chain", err)
	}

	log.Info().Str("path", req.Body.Name).Float64("dba", result.DBA).Str("nc", result.NCLabel).Msg("Synchronous path calculation finished")
	return &models.CalculatePathResponse{Body: *result}, nil
}

// CreateCalculation creates a new batch calculation and returns an upload URL
func (h *CalculationHandler) CreateCalculation(ctx context.Context, req *models.CreateCalculationRequest) (*models.CreateCalculationResponse, error) {
	log.Info().Int64("fileSize", req.Body.FileSize).Int("pathCount", req.Body.PathCount).Str("sessionID", req.Body.SessionID).Msg("Creating new calculation")

	// Generate unique calculation ID
	calculationID := uuid.New()

	// S3 key for the path set document
	documentKey := fmt.Sprintf("paths/%s.json", calculationID)

	// Validate document size explicitly
	if req.Body.FileSize < 2 {
		return nil, huma.Error400BadRequest("Path set document is empty.", nil)
	}
	if req.Body.FileSize > 20*1024*1024 {
		return nil, huma.Error400BadRequest("Path set document too large. Split the paths across several calculations.", nil)
	}

	// Generate upload URL
	uploadURL, err := h.s3Service.GenerateUploadURL(ctx, documentKey, storage.DocumentContentType)
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to prepare upload. Please try again.", err)
	}
	log.Info().Str("documentKey", documentKey).Msg("S3 upload URL generated successfully")

	// Create calculation record in database
	calc := &models.Calculation{
		ID:            calculationID.String(),
		SessionID:     req.Body.SessionID,
		Status:        "pending",
		Progress:      0,
		PathCount:     req.Body.PathCount,
		DocumentS3Key: &documentKey,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(ctx, calc); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create calculation", err)
	}
	log.Info().Str("calculationID", calc.ID).Str("sessionID", calc.SessionID).Msg("Calculation record created successfully")

	resp := &models.CreateCalculationResponse{}
	resp.Body.ID = calc.ID
	resp.Body.UploadURL = uploadURL
	resp.Body.ExpiresIn = int((15 * time.Minute).Seconds())
	return resp, nil
}

// StartProcessing starts processing an uploaded path set document
func (h *CalculationHandler) StartProcessing(ctx context.Context, req *models.ProcessCalculationRequest) (*models.ProcessCalculationResponse, error) {
	log.Info().Str("calculationID", req.ID).Msg("Processing start request received")
	calculationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, calculationID)
	if err != nil {
		return nil, huma.Error404NotFound("Calculation not found", err)
	}

	if calc.Status == "processing" || calc.Status == "completed" {
		return nil, huma.Error409Conflict("Calculation already processed",
			fmt.Errorf("calculation status is %s", calc.Status))
	}

	// Process in the background, the client polls the status endpoint
	log.Info().Str("calculationID", calculationID.String()).Msg("Starting background processing goroutine")
	go func() {
		if err := h.processingSvc.ProcessCalculation(context.Background(), calculationID); err != nil {
			log.Error().Err(err).Str("calculationID", calculationID.String()).Msg("Background processing failed")
			h.repo.UpdateError(context.Background(), calculationID, fmt.Sprintf("Processing failed: %v", err))
		}
	}()

	resp := &models.ProcessCalculationResponse{}
	resp.Body.ID = calculationID.String()
	resp.Body.Status = "processing"
	return resp, nil
}

// GetCalculationStatus returns the current status of a calculation
func (h *CalculationHandler) GetCalculationStatus(ctx context.Context, req *models.GetCalculationStatusRequest) (*models.GetCalculationStatusResponse, error) {
	calculationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, calculationID)
	if err != nil {
		return nil, huma.Error404NotFound("Calculation not found", err)
	}

	resp := &models.GetCalculationStatusResponse{}
	resp.Body.ID = calc.ID
	resp.Body.Status = calc.Status
	resp.Body.Progress = calc.Progress
	resp.Body.Message = h.generateStatusMessage(calc.Status, calc.Progress)
	return resp, nil
}

// GetCalculationResults returns the stored per-path results
func (h *CalculationHandler) GetCalculationResults(ctx context.Context, req *models.GetCalculationResultsRequest) (*models.GetCalculationResultsResponse, error) {
	calculationID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid calculation ID", err)
	}

	calc, err := h.repo.GetByID(ctx, calculationID)
	if err != nil {
		return nil, huma.Error404NotFound("Calculation not found", err)
	}

	if calc.Status != "completed" {
		return nil, huma.Error409Conflict("Calculation not yet completed",
			fmt.Errorf("calculation status is %s", calc.Status))
	}

	results, err := h.repo.GetResults(ctx, calculationID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get results", err)
	}

	resp := &models.GetCalculationResultsResponse{}
	resp.Body.ID = calc.ID
	resp.Body.Results = results.Results
	resp.Body.CreatedAt = results.CreatedAt
	return resp, nil
}

// ListSessionCalculations returns a session's calculations, newest first
func (h *CalculationHandler) ListSessionCalculations(ctx context.Context, req *models.ListSessionCalculationsRequest) (*models.ListSessionCalculationsResponse, error) {
	calcs, err := h.repo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list calculations", err)
	}

	resp := &models.ListSessionCalculationsResponse{}
	resp.Body.Calculations = make([]models.Calculation, 0, len(calcs))
	for _, calc := range calcs {
		resp.Body.Calculations = append(resp.Body.Calculations, *calc)
	}
	return resp, nil
}

// generateStatusMessage creates a human-readable status message
func (h *CalculationHandler) generateStatusMessage(status string, progress int) string {
	switch status {
	case "pending":
		return "Calculation queued for processing..."
	case "processing":
		if progress < 25 {
			return "Starting calculation..."
		} else if progress < 50 {
			return "Loading path set document..."
		} else if progress < 75 {
			return "Calculating path acoustics..."
		} else {
			return "Storing results..."
		}
	case "completed":
		return "Calculation complete!"
	case "failed":
		return "Calculation failed. Please check the path set and try again."
	default:
		return "Unknown status"
	}
}
