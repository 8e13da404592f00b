package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CalculatePathRequest represents a synchronous single-path calculation request
type CalculatePathRequest struct {
	Body PathInput `json:"-"`
}

// CalculatePathResponse represents the synchronous calculation outcome
type CalculatePathResponse struct {
	Body PathResult `json:"-"`
}

// CreateCalculationRequest represents a request to create a batch calculation
type CreateCalculationRequest struct {
	Body struct {
		SessionID string `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		PathCount int    `json:"path_count" minimum:"1" maximum:"500" required:"true" doc:"Number of paths in the document to be uploaded"`
		FileSize  int64  `json:"file_size" minimum:"2" maximum:"20971520" required:"true" doc:"Path set document size in bytes"`
	}
}

// CreateCalculationResponse represents the response from creating a calculation
type CreateCalculationResponse struct {
	Body struct {
		ID        string `json:"id" doc:"Calculation unique identifier"`
		UploadURL string `json:"upload_url" doc:"Pre-signed S3 URL for the path set document upload"`
		ExpiresIn int    `json:"expires_in" doc:"URL expiration time in seconds"`
	}
}

// ProcessCalculationRequest represents a request to start processing an uploaded path set
type ProcessCalculationRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// ProcessCalculationResponse acknowledges that processing has started
type ProcessCalculationResponse struct {
	Body struct {
		ID     string `json:"id" doc:"Calculation ID"`
		Status string `json:"status" doc:"Status after accepting the request"`
	}
}

// GetCalculationStatusRequest identifies the calculation to report on
type GetCalculationStatusRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// GetCalculationStatusResponse represents the current status of a calculation
type GetCalculationStatusResponse struct {
	Body struct {
		ID       string `json:"id" doc:"Calculation ID"`
		Status   string `json:"status" enum:"pending,processing,completed,failed" doc:"Calculation status"`
		Progress int    `json:"progress" minimum:"0" maximum:"100" doc:"Processing progress percentage"`
		Message  string `json:"message,omitempty" doc:"Human-readable status message"`
	}
}

// GetCalculationResultsRequest identifies the calculation whose results to fetch
type GetCalculationResultsRequest struct {
	ID string `path:"id" doc:"Calculation ID"`
}

// GetCalculationResultsResponse represents the completed per-path results
type GetCalculationResultsResponse struct {
	Body struct {
		ID        string       `json:"id" doc:"Calculation ID"`
		Results   []PathResult `json:"results" doc:"One result per input path, in document order"`
		CreatedAt time.Time    `json:"created_at" doc:"Results storage timestamp"`
	}
}

// ListSessionCalculationsRequest identifies the session whose calculations to list
type ListSessionCalculationsRequest struct {
	SessionID string `path:"sessionID" minLength:"10" maxLength:"50" doc:"Client session identifier"`
}

// ListSessionCalculationsResponse lists a session's calculations, newest first
type ListSessionCalculationsResponse struct {
	Body struct {
		Calculations []Calculation `json:"calculations" doc:"Calculations belonging to the session, newest first"`
	}
}

// Calculation represents the core calculation entity (for internal use)
type Calculation struct {
	ID            string     `json:"id"`
	SessionID     string     `json:"session_id"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	PathCount     int        `json:"path_count"`
	DocumentS3Key *string    `json:"document_s3_key,omitempty"`
	ErrorMsg      *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// CalculationResults represents the stored per-path results
type CalculationResults struct {
	ID            string       `json:"id"`
	CalculationID string       `json:"calculation_id"`
	Results       []PathResult `json:"results"`
	CreatedAt     time.Time    `json:"created_at"`
}
