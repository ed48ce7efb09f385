package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-backend/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto the API error taxonomy so usecases and
// the error middleware never see raw pg errors: unique violation -> 409,
// foreign key violation -> 400, no rows -> 404.
func translate(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Conflict("Duplicate entry")
		case pgForeignKeyViolation:
			return apperror.BadRequest("Invalid reference: " + pgErr.ConstraintName)
		}
	}
	return apperror.Internal(err)
}
