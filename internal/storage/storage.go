package storage

import (
	"context"

	"applicant-intake/internal/models"
	"applicant-intake/internal/transport/dto"
)

// ApplicationRepository defines the interface for the four-table application
// aggregate. Every multi-statement operation is atomic: it either commits all
// of its rows or none of them.
type ApplicationRepository interface {
	// Create allocates the applicant id and control number and inserts the
	// applicant, metadata and any present child rows in one transaction.
	Create(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.ApplicationReceipt, error)
	// GetAll returns every aggregate, most recent applicant id first.
	GetAll(ctx context.Context) ([]models.ApplicationRecord, error)
	// GetByID returns one aggregate or ErrNotFound.
	GetByID(ctx context.Context, applicantID string) (*models.ApplicationRecord, error)
	// Replace updates the applicant and metadata rows in place and rewrites the
	// education and jobs collections from the payload, in one transaction.
	Replace(ctx context.Context, req *dto.ReplaceApplicationRequest) error
	// Delete removes all four tables' rows for the id, children first.
	// Deleting an unknown id is a no-op, not an error.
	Delete(ctx context.Context, applicantID string) error
}
