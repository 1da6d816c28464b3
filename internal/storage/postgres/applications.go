package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"applicant-intake/internal/models"
	"applicant-intake/internal/storage"
	"applicant-intake/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Keeping it an
// interface lets tests substitute a mock pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertApplicantStmt = `
		INSERT INTO applicant_info (applicant_id, applicant_name, applicant_address, contact_number, age, sex)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertApplicationStmt = `
		INSERT INTO application_info (applicant_id, control_number, position_applied, salary_desired)
		VALUES ($1, $2, $3, $4)`

	insertEducationStmt = `
		INSERT INTO education_info (applicant_id, student_id, educational_attainment, institution_name, year_graduated, honors)
		VALUES ($1, $2, $3, $4, $5, $6)`

	insertJobStmt = `
		INSERT INTO job_info (applicant_id, employment_id, company_name, company_location, position, salary)
		VALUES ($1, $2, $3, $4, $5, $6)`

	updateApplicantStmt = `
		UPDATE applicant_info
		SET applicant_name = $1, applicant_address = $2, contact_number = $3, age = $4, sex = $5
		WHERE applicant_id = $6`

	updateApplicationStmt = `
		UPDATE application_info
		SET position_applied = $1, salary_desired = $2
		WHERE applicant_id = $3`

	listRecordsQuery = `
		SELECT a.applicant_id, a.applicant_name, a.applicant_address, a.contact_number, a.age, a.sex,
		       app.control_number, app.position_applied, app.salary_desired
		FROM applicant_info a
		JOIN application_info app ON a.applicant_id = app.applicant_id
		ORDER BY CAST(a.applicant_id AS INTEGER) DESC`

	getRecordQuery = `
		SELECT a.applicant_id, a.applicant_name, a.applicant_address, a.contact_number, a.age, a.sex,
		       app.control_number, app.position_applied, app.salary_desired
		FROM applicant_info a
		JOIN application_info app ON a.applicant_id = app.applicant_id
		WHERE a.applicant_id = $1`

	listEducationQuery = `
		SELECT applicant_id, student_id, educational_attainment, institution_name, year_graduated, honors
		FROM education_info
		ORDER BY applicant_id, student_id`

	getEducationQuery = `
		SELECT applicant_id, student_id, educational_attainment, institution_name, year_graduated, honors
		FROM education_info
		WHERE applicant_id = $1
		ORDER BY student_id`

	listJobsQuery = `
		SELECT applicant_id, employment_id, company_name, company_location, position, salary
		FROM job_info
		ORDER BY applicant_id, employment_id`

	getJobsQuery = `
		SELECT applicant_id, employment_id, company_name, company_location, position, salary
		FROM job_info
		WHERE applicant_id = $1
		ORDER BY employment_id`

	deleteEducationStmt   = `DELETE FROM education_info WHERE applicant_id = $1`
	deleteJobsStmt        = `DELETE FROM job_info WHERE applicant_id = $1`
	deleteApplicationStmt = `DELETE FROM application_info WHERE applicant_id = $1`
	deleteApplicantStmt   = `DELETE FROM applicant_info WHERE applicant_id = $1`
)

// ApplicationRepo implements storage.ApplicationRepository with parameterized
// SQL over a pgx pool.
type ApplicationRepo struct {
	db DB
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts the full aggregate in one transaction: applicant row first,
// then the metadata row, then whichever child rows the payload actually
// carries. Any failure rolls the whole unit back.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.ApplicationReceipt, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning create transaction: %v\n", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	applicantID, err := nextApplicantID(ctx, tx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, insertApplicantStmt,
		applicantID, req.Name, req.Address, req.ContactNumber, req.Age, req.Sex); err != nil {
		log.Printf("Error inserting applicant %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to insert applicant: %w", err)
	}

	now := time.Now()
	controlNumber := newControlNumber(applicantID, now)

	if _, err := tx.Exec(ctx, insertApplicationStmt,
		applicantID, controlNumber, req.PositionApplied, req.SalaryDesired); err != nil {
		log.Printf("Error inserting application metadata for %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to insert application metadata: %w", err)
	}

	for i, entry := range req.Education {
		if !educationPresent(entry) {
			continue
		}
		studentID := childRecordID(entry.StudentID, applicantID, i, now)
		if _, err := tx.Exec(ctx, insertEducationStmt,
			applicantID, studentID, entry.Attainment, entry.Institution, entry.YearGraduated, honorsOrNil(entry.Honors)); err != nil {
			log.Printf("Error inserting education row for %s: %v\n", applicantID, err)
			return nil, fmt.Errorf("failed to insert education record: %w", err)
		}
	}

	for i, entry := range req.Jobs {
		if !jobPresent(entry) {
			continue
		}
		employmentID := childRecordID(entry.EmploymentID, applicantID, i, now)
		if _, err := tx.Exec(ctx, insertJobStmt,
			applicantID, employmentID, entry.CompanyName, entry.CompanyLocation, entry.Position, entry.Salary); err != nil {
			log.Printf("Error inserting job row for %s: %v\n", applicantID, err)
			return nil, fmt.Errorf("failed to insert job record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing create for %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to commit application: %w", err)
	}

	log.Printf("Application created successfully with applicant ID %s, control number %s", applicantID, controlNumber)
	return &models.ApplicationReceipt{ApplicantID: applicantID, ControlNumber: controlNumber}, nil
}

// Replace performs a full in-place edit: parent rows are updated, child
// collections are deleted and reinserted from the payload. Per-row upsert by
// natural key cannot express removals once the collections are variable
// length, so full replace is the correct strategy here.
func (r *ApplicationRepo) Replace(ctx context.Context, req *dto.ReplaceApplicationRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning replace transaction: %v\n", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, updateApplicantStmt,
		req.Name, req.Address, req.ContactNumber, req.Age, req.Sex, req.ApplicantID)
	if err != nil {
		log.Printf("Error updating applicant %s: %v\n", req.ApplicantID, err)
		return fmt.Errorf("failed to update applicant: %w", err)
	}
	if ct.RowsAffected() == 0 {
		log.Printf("Attempted to replace non-existent application %s\n", req.ApplicantID)
		return storage.ErrNotFound
	}

	// Control number is deliberately untouched: it is the applicant's receipt.
	if _, err := tx.Exec(ctx, updateApplicationStmt,
		req.PositionApplied, req.SalaryDesired, req.ApplicantID); err != nil {
		log.Printf("Error updating application metadata for %s: %v\n", req.ApplicantID, err)
		return fmt.Errorf("failed to update application metadata: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteEducationStmt, req.ApplicantID); err != nil {
		log.Printf("Error clearing education rows for %s: %v\n", req.ApplicantID, err)
		return fmt.Errorf("failed to clear education records: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteJobsStmt, req.ApplicantID); err != nil {
		log.Printf("Error clearing job rows for %s: %v\n", req.ApplicantID, err)
		return fmt.Errorf("failed to clear job records: %w", err)
	}

	now := time.Now()
	for i, entry := range req.Education {
		if entry.Attainment == "" && entry.Institution == "" {
			continue
		}
		studentID := childRecordID(entry.StudentID, req.ApplicantID, i, now)
		if _, err := tx.Exec(ctx, insertEducationStmt,
			req.ApplicantID, studentID, entry.Attainment, entry.Institution, entry.YearGraduated, honorsOrNil(entry.Honors)); err != nil {
			log.Printf("Error reinserting education row for %s: %v\n", req.ApplicantID, err)
			return fmt.Errorf("failed to insert education record: %w", err)
		}
	}
	for i, entry := range req.Jobs {
		if entry.CompanyName == "" && entry.Position == "" {
			continue
		}
		employmentID := childRecordID(entry.EmploymentID, req.ApplicantID, i, now)
		if _, err := tx.Exec(ctx, insertJobStmt,
			req.ApplicantID, employmentID, entry.CompanyName, entry.CompanyLocation, entry.Position, entry.Salary); err != nil {
			log.Printf("Error reinserting job row for %s: %v\n", req.ApplicantID, err)
			return fmt.Errorf("failed to insert job record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing replace for %s: %v\n", req.ApplicantID, err)
		return fmt.Errorf("failed to commit application replace: %w", err)
	}

	log.Printf("Application %s replaced successfully", req.ApplicantID)
	return nil
}

// GetAll returns every aggregate, newest applicant id first. Child collections
// are fetched in two grouped queries and attached in memory.
func (r *ApplicationRepo) GetAll(ctx context.Context) ([]models.ApplicationRecord, error) {
	rows, err := r.db.Query(ctx, listRecordsQuery)
	if err != nil {
		log.Printf("Error querying applications: %v\n", err)
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	records := []models.ApplicationRecord{}
	index := map[string]int{}
	for rows.Next() {
		var rec models.ApplicationRecord
		if err := rows.Scan(
			&rec.ApplicantID, &rec.Name, &rec.Address, &rec.ContactNumber, &rec.Age, &rec.Sex,
			&rec.ControlNumber, &rec.PositionApplied, &rec.SalaryDesired); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		rec.Education = []models.Education{}
		rec.Jobs = []models.Job{}
		index[rec.ApplicantID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application rows: %w", err)
	}

	education, err := r.queryEducation(ctx, listEducationQuery)
	if err != nil {
		return nil, err
	}
	for _, edu := range education {
		if i, ok := index[edu.ApplicantID]; ok {
			records[i].Education = append(records[i].Education, edu)
		}
	}

	jobs, err := r.queryJobs(ctx, listJobsQuery)
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if i, ok := index[job.ApplicantID]; ok {
			records[i].Jobs = append(records[i].Jobs, job)
		}
	}

	return records, nil
}

// GetByID returns one aggregate or storage.ErrNotFound. An applicant row
// without application metadata does not count as found; the join excludes it.
func (r *ApplicationRepo) GetByID(ctx context.Context, applicantID string) (*models.ApplicationRecord, error) {
	var rec models.ApplicationRecord
	err := r.db.QueryRow(ctx, getRecordQuery, applicantID).Scan(
		&rec.ApplicantID, &rec.Name, &rec.Address, &rec.ContactNumber, &rec.Age, &rec.Sex,
		&rec.ControlNumber, &rec.PositionApplied, &rec.SalaryDesired)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with applicant ID: %s\n", applicantID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to get application %s: %w", applicantID, err)
	}

	rec.Education, err = r.queryEducation(ctx, getEducationQuery, applicantID)
	if err != nil {
		return nil, err
	}
	rec.Jobs, err = r.queryJobs(ctx, getJobsQuery, applicantID)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// Delete removes all four tables' rows for the id, children before parent, in
// one transaction. No storage-level cascade exists; the ordering is ours to
// uphold. Unknown ids succeed with zero rows affected.
func (r *ApplicationRepo) Delete(ctx context.Context, applicantID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning delete transaction: %v\n", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{deleteJobsStmt, deleteEducationStmt, deleteApplicationStmt, deleteApplicantStmt} {
		if _, err := tx.Exec(ctx, stmt, applicantID); err != nil {
			log.Printf("Error deleting rows for applicant %s: %v\n", applicantID, err)
			return fmt.Errorf("failed to delete application %s: %w", applicantID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing delete for %s: %v\n", applicantID, err)
		return fmt.Errorf("failed to commit application delete: %w", err)
	}

	log.Printf("Application %s deleted (cascade across all tables)", applicantID)
	return nil
}

func (r *ApplicationRepo) queryEducation(ctx context.Context, query string, args ...any) ([]models.Education, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying education rows: %v\n", err)
		return nil, fmt.Errorf("failed to list education records: %w", err)
	}
	defer rows.Close()

	out := []models.Education{}
	for rows.Next() {
		var edu models.Education
		if err := rows.Scan(&edu.ApplicantID, &edu.StudentID, &edu.Attainment, &edu.Institution, &edu.YearGraduated, &edu.Honors); err != nil {
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		out = append(out, edu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education rows: %w", err)
	}
	return out, nil
}

func (r *ApplicationRepo) queryJobs(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying job rows: %v\n", err)
		return nil, fmt.Errorf("failed to list job records: %w", err)
	}
	defer rows.Close()

	out := []models.Job{}
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(&job.ApplicantID, &job.EmploymentID, &job.CompanyName, &job.CompanyLocation, &job.Position, &job.Salary); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return out, nil
}

// educationPresent reports whether the entry carries at least one non-empty
// field. Empty strings and absent fields are treated identically.
func educationPresent(e dto.EducationEntry) bool {
	return e.Attainment != "" || e.Institution != "" || e.Honors != "" || e.YearGraduated != 0
}

func jobPresent(j dto.JobEntry) bool {
	return j.CompanyName != "" || j.CompanyLocation != "" || j.Position != "" || j.Salary != 0
}

// honorsOrNil maps an empty honors field to NULL; it is the only nullable
// column in the schema.
func honorsOrNil(honors string) *string {
	if honors == "" {
		return nil
	}
	return &honors
}
