package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"applicant-intake/internal/storage"
	"applicant-intake/internal/storage/postgres"
	"applicant-intake/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anaCruz is the canonical intake payload: one education entry, no previous
// employment.
func anaCruz() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		Name:            "Ana Cruz",
		Age:             25,
		Sex:             "F",
		PositionApplied: "Analyst",
		Education: []dto.EducationEntry{
			{Institution: "XYZ University", YearGraduated: 2020},
		},
		Jobs: []dto.JobEntry{},
	}
}

// realChildID matches any synthesized or caller-supplied child identifier,
// i.e. anything that is not an empty string or a "new-" placeholder.
type realChildID struct{}

func (realChildID) Match(v any) bool {
	s, ok := v.(string)
	return ok && s != "" && !strings.HasPrefix(s, "new-")
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.ApplicationRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewApplicationRepo(mock)
}

func expectMaxApplicantID(mock pgxmock.PgxPoolIface, maxID int64) {
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(maxID))
}

func TestCreateAllocatesNextApplicantID(t *testing.T) {
	tests := []struct {
		name       string
		maxID      int64
		expectedID string
	}{
		{"empty table yields first padded id", 0, "001"},
		{"next id is max plus one", 41, "042"},
		{"ids past the pad width keep their natural length", 999, "1000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)

			mock.ExpectBegin()
			expectMaxApplicantID(mock, tc.maxID)
			mock.ExpectExec("INSERT INTO applicant_info").
				WithArgs(tc.expectedID, "Ana Cruz", "", "", 25, "F").
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectExec("INSERT INTO application_info").
				WithArgs(tc.expectedID, pgxmock.AnyArg(), "Analyst", float64(0)).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectExec("INSERT INTO education_info").
				WithArgs(tc.expectedID, realChildID{}, "", "XYZ University", 2020, pgxmock.AnyArg()).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectCommit()

			receipt, err := repo.Create(context.Background(), anaCruz())
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, receipt.ApplicantID)
			assert.True(t, strings.HasPrefix(receipt.ControlNumber, tc.expectedID),
				"control number %q should start with the applicant id", receipt.ControlNumber)
			assert.Len(t, receipt.ControlNumber, len(tc.expectedID)+3,
				"control number should append a three digit time suffix")

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateOmitsEmptyChildEntries(t *testing.T) {
	mock, repo := newMockRepo(t)

	req := anaCruz()
	// All placeholder rows: nothing worth persisting.
	req.Education = []dto.EducationEntry{{}, {}}
	req.Jobs = []dto.JobEntry{{}}

	mock.ExpectBegin()
	expectMaxApplicantID(mock, 0)
	mock.ExpectExec("INSERT INTO applicant_info").
		WithArgs("001", "Ana Cruz", "", "", 25, "F").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO application_info").
		WithArgs("001", pgxmock.AnyArg(), "Analyst", float64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// No child inserts expected.
	mock.ExpectCommit()

	_, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenChildInsertFails(t *testing.T) {
	mock, repo := newMockRepo(t)

	req := anaCruz()
	req.Education = nil
	req.Jobs = []dto.JobEntry{{CompanyName: "Acme", Position: "Clerk", Salary: 18000}}

	mock.ExpectBegin()
	expectMaxApplicantID(mock, 0)
	mock.ExpectExec("INSERT INTO applicant_info").
		WithArgs("001", "Ana Cruz", "", "", 25, "F").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO application_info").
		WithArgs("001", pgxmock.AnyArg(), "Analyst", float64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO job_info").
		WithArgs("001", realChildID{}, "Acme", "", "Clerk", float64(18000)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), req)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(),
		"a failed child insert must roll the whole transaction back")
}

func TestReplaceRewritesChildCollections(t *testing.T) {
	mock, repo := newMockRepo(t)

	honors := "Cum Laude"
	req := &dto.ReplaceApplicationRequest{
		ApplicantID:     "007",
		Name:            "Ana Cruz",
		Address:         "12 Mabini St",
		ContactNumber:   "0917-555-0199",
		Age:             26,
		Sex:             "F",
		PositionApplied: "Senior Analyst",
		SalaryDesired:   60000,
		Education: []dto.EducationEntry{
			// Prior state had two rows; the edit keeps only this one.
			{StudentID: "007-1700000000000-0", Attainment: "BS Statistics", Institution: "XYZ University", YearGraduated: 2020, Honors: honors},
			{}, // blank form row, filtered out
		},
		Jobs: []dto.JobEntry{
			{EmploymentID: "new-1", CompanyName: "Acme", CompanyLocation: "Makati", Position: "Clerk", Salary: 18000},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applicant_info").
		WithArgs("Ana Cruz", "12 Mabini St", "0917-555-0199", 26, "F", "007").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE application_info").
		WithArgs("Senior Analyst", float64(60000), "007").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM education_info").
		WithArgs("007").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM job_info").
		WithArgs("007").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	// Exactly one education row survives the edit; its caller-supplied id is kept.
	mock.ExpectExec("INSERT INTO education_info").
		WithArgs("007", "007-1700000000000-0", "BS Statistics", "XYZ University", 2020, &honors).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// The placeholder employment id is replaced with a synthesized one.
	mock.ExpectExec("INSERT INTO job_info").
		WithArgs("007", realChildID{}, "Acme", "Makati", "Clerk", float64(18000)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceUnknownApplicantReturnsNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	req := &dto.ReplaceApplicationRequest{
		ApplicantID:     "999",
		Name:            "Nobody",
		Age:             30,
		Sex:             "M",
		PositionApplied: "Analyst",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applicant_info").
		WithArgs("Nobody", "", "", 30, "M", "999").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Replace(context.Background(), req)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRollsBackWhenReinsertFails(t *testing.T) {
	mock, repo := newMockRepo(t)

	req := &dto.ReplaceApplicationRequest{
		ApplicantID:     "007",
		Name:            "Ana Cruz",
		Age:             26,
		Sex:             "F",
		PositionApplied: "Analyst",
		Education:       []dto.EducationEntry{{Attainment: "BS Statistics"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applicant_info").
		WithArgs("Ana Cruz", "", "", 26, "F", "007").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE application_info").
		WithArgs("Analyst", float64(0), "007").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM education_info").
		WithArgs("007").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM job_info").
		WithArgs("007").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO education_info").
		WithArgs("007", realChildID{}, "BS Statistics", "", 0, pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Replace(context.Background(), req)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(),
		"prior child rows must survive a failed replace")
}

func TestDeleteRemovesChildrenFirst(t *testing.T) {
	mock, repo := newMockRepo(t)

	// Expectations are ordered: children strictly before the parent rows.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_info").
		WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM education_info").
		WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM application_info").
		WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM applicant_info").
		WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIsIdempotent(t *testing.T) {
	mock, repo := newMockRepo(t)

	// Second delete of the same id: every statement touches zero rows and the
	// operation still succeeds.
	mock.ExpectBegin()
	for _, table := range []string{"job_info", "education_info", "application_info", "applicant_info"} {
		mock.ExpectExec("DELETE FROM " + table).
			WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRollsBackOnFailure(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_info").
		WithArgs("001").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM education_info").
		WithArgs("001").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "001")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDReturnsFullAggregate(t *testing.T) {
	mock, repo := newMockRepo(t)

	honors := "Cum Laude"
	mock.ExpectQuery("FROM applicant_info a").
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "applicant_name", "applicant_address", "contact_number", "age", "sex",
			"control_number", "position_applied", "salary_desired",
		}).AddRow("001", "Ana Cruz", "12 Mabini St", "0917-555-0199", 25, "F", "001123", "Analyst", 50000.0))
	mock.ExpectQuery("FROM education_info").
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "student_id", "educational_attainment", "institution_name", "year_graduated", "honors",
		}).
			AddRow("001", "001-1-0", "BS Statistics", "XYZ University", 2020, &honors).
			AddRow("001", "001-1-1", "MS Statistics", "ABC University", 2022, nil))
	mock.ExpectQuery("FROM job_info").
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "employment_id", "company_name", "company_location", "position", "salary",
		}).AddRow("001", "001-1-0", "Acme", "Makati", "Clerk", 18000.0))

	rec, err := repo.GetByID(context.Background(), "001")
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", rec.Name)
	assert.Equal(t, "001123", rec.ControlNumber)
	assert.Equal(t, 50000.0, rec.SalaryDesired)
	require.Len(t, rec.Education, 2)
	assert.Equal(t, "XYZ University", rec.Education[0].Institution)
	require.NotNil(t, rec.Education[0].Honors)
	assert.Equal(t, "Cum Laude", *rec.Education[0].Honors)
	assert.Nil(t, rec.Education[1].Honors)
	require.Len(t, rec.Jobs, 1)
	assert.Equal(t, "Acme", rec.Jobs[0].CompanyName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDUnknownApplicant(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("FROM applicant_info a").
		WithArgs("404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "404")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllGroupsChildrenByApplicant(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("FROM applicant_info a").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "applicant_name", "applicant_address", "contact_number", "age", "sex",
			"control_number", "position_applied", "salary_desired",
		}).
			AddRow("002", "Ben Reyes", "", "", 31, "M", "002456", "Engineer", 70000.0).
			AddRow("001", "Ana Cruz", "", "", 25, "F", "001123", "Analyst", 50000.0))
	mock.ExpectQuery("FROM education_info").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "student_id", "educational_attainment", "institution_name", "year_graduated", "honors",
		}).AddRow("001", "001-1-0", "", "XYZ University", 2020, nil))
	mock.ExpectQuery("FROM job_info").
		WillReturnRows(pgxmock.NewRows([]string{
			"applicant_id", "employment_id", "company_name", "company_location", "position", "salary",
		}).AddRow("002", "002-1-0", "Acme", "Makati", "Clerk", 18000.0))

	records, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent applicant id first.
	assert.Equal(t, "002", records[0].ApplicantID)
	assert.Equal(t, "001", records[1].ApplicantID)

	assert.Empty(t, records[0].Education)
	require.Len(t, records[0].Jobs, 1)
	require.Len(t, records[1].Education, 1)
	assert.Equal(t, "XYZ University", records[1].Education[0].Institution)
	assert.Empty(t, records[1].Jobs)

	assert.NoError(t, mock.ExpectationsWereMet())
}
