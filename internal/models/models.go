package models

import (
	"database/sql/driver"
	"fmt"
)

// --- Sex Enum ---
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Scan implements the sql.Scanner interface for Sex
func (s *Sex) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Sex: value is not string or []byte")
		}
	}
	v := Sex(strVal)
	switch v {
	case SexMale, SexFemale:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid Sex value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Sex
func (s Sex) Value() (driver.Value, error) {
	return string(s), nil
}

// Label returns the human-readable form used on printed documents.
func (s Sex) Label() string {
	if s == SexMale {
		return "Male"
	}
	return "Female"
}

// Applicant is one row of applicant_info: the identity half of an application.
// The applicant id is a zero-padded numeric string allocated at submission time
// and never changed afterwards.
type Applicant struct {
	ApplicantID   string `json:"applicantId" db:"applicant_id"`
	Name          string `json:"name" db:"applicant_name"`
	Address       string `json:"address" db:"applicant_address"`
	ContactNumber string `json:"contactNumber" db:"contact_number"`
	Age           int    `json:"age" db:"age"`
	Sex           Sex    `json:"sex" db:"sex"`
}

// Education is one row of education_info. An applicant may have zero or more;
// the student id distinguishes them. Honors is the only nullable column.
type Education struct {
	ApplicantID   string  `json:"-" db:"applicant_id"`
	StudentID     string  `json:"studentId" db:"student_id"`
	Attainment    string  `json:"educationalAttainment" db:"educational_attainment"`
	Institution   string  `json:"institutionName" db:"institution_name"`
	YearGraduated int     `json:"yearGraduated" db:"year_graduated"`
	Honors        *string `json:"honors,omitempty" db:"honors"`
}

// Job is one row of job_info: a previous employment entry, zero or more per
// applicant, distinguished by the employment id.
type Job struct {
	ApplicantID     string  `json:"-" db:"applicant_id"`
	EmploymentID    string  `json:"employmentId" db:"employment_id"`
	CompanyName     string  `json:"companyName" db:"company_name"`
	CompanyLocation string  `json:"companyLocation" db:"company_location"`
	Position        string  `json:"position" db:"position"`
	Salary          float64 `json:"salary" db:"salary"`
}

// ApplicationRecord is the full aggregate: the applicant row inner-joined with
// its application_info metadata, plus the education and employment collections.
type ApplicationRecord struct {
	Applicant
	ControlNumber   string      `json:"controlNumber" db:"control_number"`
	PositionApplied string      `json:"positionApplied" db:"position_applied"`
	SalaryDesired   float64     `json:"salaryDesired" db:"salary_desired"`
	Education       []Education `json:"education"`
	Jobs            []Job       `json:"jobs"`
}

// ApplicationReceipt is what a successful submission returns to the applicant.
// The control number is the human-facing receipt code; it is immutable.
type ApplicationReceipt struct {
	ApplicantID   string `json:"applicantId"`
	ControlNumber string `json:"controlNumber"`
}
