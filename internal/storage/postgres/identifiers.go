package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Applicant ids are zero-padded to at least this width. Values past 999 keep
// their natural length; fmt pads, it never truncates.
const applicantIDWidth = 3

// newChildIDPrefix marks a caller-supplied child id as a placeholder the form
// invented for a not-yet-persisted row. Such ids are replaced on insert.
const newChildIDPrefix = "new-"

// nextApplicantID reads the current maximum numeric applicant id inside the
// caller's transaction and returns max+1 as a zero-padded string. An empty
// table yields "001".
func nextApplicantID(ctx context.Context, tx pgx.Tx) (string, error) {
	var maxID int64
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(CAST(applicant_id AS INTEGER)), 0) FROM applicant_info`,
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to read max applicant id: %w", err)
	}
	return fmt.Sprintf("%0*d", applicantIDWidth, maxID+1), nil
}

// newControlNumber derives the receipt code from the applicant id plus the
// last three digits of the current epoch millis. Uniqueness is probabilistic:
// two allocations for the same applicant id within the same millisecond bucket
// would collide. That is an accepted limitation for low-concurrency intake;
// the id prefix itself is allocated under a transaction, so in practice the
// prefix already differs.
func newControlNumber(applicantID string, now time.Time) string {
	return fmt.Sprintf("%s%03d", applicantID, now.UnixMilli()%1000)
}

// childRecordID keeps a caller-supplied child identifier unless it is absent
// or a placeholder, in which case a fresh applicantId-millis-ordinal id is
// synthesized.
func childRecordID(supplied, applicantID string, ordinal int, now time.Time) string {
	if supplied != "" && !strings.HasPrefix(supplied, newChildIDPrefix) {
		return supplied
	}
	return fmt.Sprintf("%s-%d-%d", applicantID, now.UnixMilli(), ordinal)
}
