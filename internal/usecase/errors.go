package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrNoteNotFound         = errors.New("consultation note not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPhotoNotFound        = errors.New("patient has no photo")
	ErrInvalidSummaryKind   = errors.New("invalid summary kind, use full or essential")
)

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
