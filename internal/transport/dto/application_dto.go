// internal/transport/dto/application_dto.go
package dto

// --- Application Request DTOs ---

// EducationEntry is one education record in a submission or edit payload.
// An entry with no meaningful fields is skipped rather than rejected, so the
// form can post empty placeholder rows.
type EducationEntry struct {
	StudentID     string `json:"studentId" validate:"omitempty,max=64"` // Kept as-is unless absent or "new-" prefixed
	Attainment    string `json:"educationalAttainment" validate:"omitempty,max=150"`
	Institution   string `json:"institutionName" validate:"omitempty,max=150"`
	YearGraduated int    `json:"yearGraduated" validate:"omitempty,gte=0,lte=9999"`
	Honors        string `json:"honors" validate:"omitempty,max=150"`
}

// JobEntry is one previous-employment record in a submission or edit payload.
type JobEntry struct {
	EmploymentID    string  `json:"employmentId" validate:"omitempty,max=64"`
	CompanyName     string  `json:"companyName" validate:"omitempty,max=150"`
	CompanyLocation string  `json:"companyLocation" validate:"omitempty,max=150"`
	Position        string  `json:"position" validate:"omitempty,max=150"`
	Salary          float64 `json:"salary" validate:"omitempty,gte=0"`
}

// SubmitApplicationRequest defines the structure for a new application. Age is
// an intake policy check, not a storage constraint.
type SubmitApplicationRequest struct {
	Name            string           `json:"name" validate:"required,max=150"`
	Address         string           `json:"address" validate:"omitempty,max=250"`
	ContactNumber   string           `json:"contactNumber" validate:"omitempty,max=32"`
	Age             int              `json:"age" validate:"required,gte=18"`
	Sex             string           `json:"sex" validate:"required,oneof=M F"`
	PositionApplied string           `json:"positionApplied" validate:"required,max=150"`
	SalaryDesired   float64          `json:"salaryDesired" validate:"omitempty,gte=0"`
	Education       []EducationEntry `json:"education" validate:"omitempty,dive"`
	Jobs            []JobEntry       `json:"jobs" validate:"omitempty,dive"`
}

// ReplaceApplicationRequest defines the structure for a full edit of an
// existing application. The control number is never part of an edit; the
// education and jobs collections fully replace whatever is stored.
type ReplaceApplicationRequest struct {
	ApplicantID     string           `json:"-" validate:"required,max=16"` // From URL path
	Name            string           `json:"name" validate:"required,max=150"`
	Address         string           `json:"address" validate:"omitempty,max=250"`
	ContactNumber   string           `json:"contactNumber" validate:"omitempty,max=32"`
	Age             int              `json:"age" validate:"required,gte=18"`
	Sex             string           `json:"sex" validate:"required,oneof=M F"`
	PositionApplied string           `json:"positionApplied" validate:"required,max=150"`
	SalaryDesired   float64          `json:"salaryDesired" validate:"omitempty,gte=0"`
	Education       []EducationEntry `json:"education" validate:"omitempty,dive"`
	Jobs            []JobEntry       `json:"jobs" validate:"omitempty,dive"`
}

// GetApplicationRequest defines the structure for fetching one application.
type GetApplicationRequest struct {
	ApplicantID string `json:"-" validate:"required,max=16"`
}

// DeleteApplicationRequest defines the structure for a cascade delete.
type DeleteApplicationRequest struct {
	ApplicantID string `json:"-" validate:"required,max=16"`
}
