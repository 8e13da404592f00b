package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/hvackit/ductnoise/internal/api/handlers"
	"github.com/hvackit/ductnoise/internal/engine"
	"github.com/hvackit/ductnoise/internal/processing"
	"github.com/hvackit/ductnoise/internal/repository"
	"github.com/hvackit/ductnoise/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, eng *engine.Engine, s3Service storage.S3Service, calcRepo repository.CalculationRepository, processingSvc processing.ProcessingService) {
	// Initialize handlers
	calcHandler := handlers.NewCalculationHandler(calcRepo, s3Service, processingSvc, eng)

	// Synchronous single-path calculation
	huma.Register(api, huma.Operation{
		OperationID: "calculatePath",
		Method:      http.MethodPost,
		Path:        "/api/paths/calculate",
		Summary:     "Calculate a single path",
		Description: "Orders the supplied components into a source-to-terminal path and returns its octave-band result",
		Tags:        []string{"Paths"},
	}, calcHandler.CalculatePath)

	// Batch calculation lifecycle
	huma.Register(api, huma.Operation{
		OperationID: "createCalculation",
		Method:      http.MethodPost,
		Path:        "/api/calculations",
		Summary:     "Create a new calculation",
		Description: "Creates a new batch calculation record and returns an upload URL for the path set document",
		Tags:        []string{"Calculations"},
	}, calcHandler.CreateCalculation)

	huma.Register(api, huma.Operation{
		OperationID: "startProcessing",
		Method:      http.MethodPost,
		Path:        "/api/calculations/{id}/process",
		Summary:     "Start processing a calculation",
		Description: "Starts calculating an uploaded path set document in the background",
		Tags:        []string{"Calculations"},
	}, calcHandler.StartProcessing)

	huma.Register(api, huma.Operation{
		OperationID: "getCalculationStatus",
		Method:      http.MethodGet,
		Path:        "/api/calculations/{id}/status",
		Summary:     "Get calculation status",
		Description: "Returns the current status and progress of a calculation",
		Tags:        []string{"Calculations"},
	}, calcHandler.GetCalculationStatus)

	huma.Register(api, huma.Operation{
		OperationID: "getCalculationResults",
		Method:      http.MethodGet,
		Path:        "/api/calculations/{id}/results",
		Summary:     "Get calculation results",
		Description: "Returns the per-path results of a completed calculation",
		Tags:        []string{"Calculations"},
	}, calcHandler.GetCalculationResults)

	huma.Register(api, huma.Operation{
		OperationID: "listSessionCalculations",
		Method:      http.MethodGet,
		Path:        "/api/sessions/{sessionID}/calculations",
		Summary:     "List a session's calculations",
		Description: "Returns every calculation created under a session, newest first",
		Tags:        []string{"Calculations"},
	}, calcHandler.ListSessionCalculations)
}
