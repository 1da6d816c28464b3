package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"applicant-intake/internal/models"
	"applicant-intake/internal/storage"

	"github.com/go-pdf/fpdf"
)

type exportService struct {
	repo       storage.ApplicationRepository
	maxRetries int
	retryDelay time.Duration
}

// NewExportService creates an ExportService over the application repository.
// maxRetries bounds the read attempts before export; the delay between
// attempts is fixed. Only the read is retried: the render is pure computation
// and writes are never retried anywhere in this system.
func NewExportService(repo storage.ApplicationRepository, maxRetries int, retryDelay time.Duration) ExportService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &exportService{repo: repo, maxRetries: maxRetries, retryDelay: retryDelay}
}

// ExportPDF fetches the aggregate (with bounded retry for transient read
// failures) and renders the application form document.
func (s *exportService) ExportPDF(ctx context.Context, applicantID string) ([]byte, error) {
	rec, err := s.getWithRetry(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return renderApplicationPDF(rec)
}

func (s *exportService) getWithRetry(ctx context.Context, applicantID string) (*models.ApplicationRecord, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		rec, err := s.repo.GetByID(ctx, applicantID)
		if err == nil {
			return rec, nil
		}
		if errors.Is(err, storage.ErrNotFound) {
			// Not transient; retrying cannot make the row appear.
			return nil, ErrNotFound
		}
		lastErr = err
		log.Printf("ExportPDF: read attempt %d/%d for %s failed: %v", attempt, s.maxRetries, applicantID, err)
		if attempt < s.maxRetries {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("failed to read application %s for export: %w", applicantID, lastErr)
}

func renderApplicationPDF(rec *models.ApplicationRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Application Form", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sectionTitle(pdf, "Personal Information")
	field(pdf, "Name", rec.Name)
	field(pdf, "Address", rec.Address)
	field(pdf, "Contact Number", rec.ContactNumber)
	field(pdf, "Age", fmt.Sprintf("%d", rec.Age))
	field(pdf, "Sex", rec.Sex.Label())
	pdf.Ln(4)

	sectionTitle(pdf, "Application Details")
	field(pdf, "Position Applied", rec.PositionApplied)
	field(pdf, "Salary Desired", fmt.Sprintf("$%.2f", rec.SalaryDesired))
	pdf.Ln(4)

	sectionTitle(pdf, "Educational Background")
	if len(rec.Education) == 0 {
		field(pdf, "Educational Attainment", "None provided")
	}
	for _, edu := range rec.Education {
		field(pdf, "Educational Attainment", edu.Attainment)
		field(pdf, "Institution", edu.Institution)
		field(pdf, "Year Graduated", fmt.Sprintf("%d", edu.YearGraduated))
		if edu.Honors != nil {
			field(pdf, "Honors", *edu.Honors)
		}
		pdf.Ln(2)
	}
	pdf.Ln(2)

	sectionTitle(pdf, "Previous Employment")
	if len(rec.Jobs) == 0 {
		field(pdf, "Company", "None provided")
	}
	for _, job := range rec.Jobs {
		field(pdf, "Company", job.CompanyName)
		field(pdf, "Location", job.CompanyLocation)
		field(pdf, "Position", job.Position)
		field(pdf, "Salary", fmt.Sprintf("$%.2f", job.Salary))
		pdf.Ln(2)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Application Reference", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Applicant ID: %s", rec.ApplicantID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Control Number: %s", rec.ControlNumber), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("ExportPDF: error rendering document for %s: %v", rec.ApplicantID, err)
		return nil, fmt.Errorf("failed to render application PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
}

func field(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
}
