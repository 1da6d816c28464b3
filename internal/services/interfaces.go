package services

import (
	"context"

	"applicant-intake/internal/transport/dto"
)

// ExportService defines the interface for rendering a submitted application
// to a downloadable document.
type ExportService interface {
	// ExportPDF fetches the aggregate for the id and renders it. Returns
	// ErrNotFound for unknown ids; transient read failures are retried a
	// bounded number of times before surfacing.
	ExportPDF(ctx context.Context, applicantID string) ([]byte, error)
}

// AuthService defines the interface for the admin dashboard gate.
type AuthService interface {
	// Login checks the configured admin credentials and returns a signed
	// bearer token, or ErrInvalidCredentials.
	Login(ctx context.Context, req *dto.AdminLoginRequest) (string, error)
}
