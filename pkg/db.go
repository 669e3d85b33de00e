package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// PgErrorCode returns the SQLSTATE of a postgres error anywhere in the chain, or "".
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolationError(err error) bool {
	return PgErrorCode(err) == pgUniqueViolation
}

func IsForeignKeyViolationError(err error) bool {
	return PgErrorCode(err) == pgForeignKeyViolation
}

// IsCheckViolationError reports a rejected enum-like value, e.g. an unknown difficulty.
func IsCheckViolationError(err error) bool {
	return PgErrorCode(err) == pgCheckViolation
}
