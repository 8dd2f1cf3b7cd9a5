package postgres

import (
	"errors"
	"fmt"

	"estateadmin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	return pgErrorCode(err) == "23505"
}

// IsPgForeignKeyError checks if error is a foreign key violation
func IsPgForeignKeyError(err error) bool {
	return pgErrorCode(err) == "23503"
}

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// constraintName returns the violated constraint, if the driver reported one
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// notFound builds the domain error for a missing row
func notFound(kind string, id int64) error {
	return &domain.NotFoundError{Kind: kind, ID: id}
}

// mapWriteError converts constraint violations into domain conflicts and wraps the rest
func mapWriteError(op, kind string, id int64, err error) error {
	switch {
	case IsPgDuplicateError(err):
		return &domain.ConflictError{
			Message:      fmt.Sprintf("%s already exists (%s)", kind, constraintName(err)),
			ResourceType: kind,
			ResourceID:   id,
		}
	case IsPgForeignKeyError(err):
		return &domain.ConflictError{
			Message:      fmt.Sprintf("%s %d is referenced by other records", kind, id),
			ResourceType: kind,
			ResourceID:   id,
		}
	default:
		return fmt.Errorf("%s %s: %w", op, kind, err)
	}
}
