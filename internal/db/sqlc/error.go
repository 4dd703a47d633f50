package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolationCode = "23505"
)

var (
	ErrRecordNotFound = pgx.ErrNoRows

	// ErrInsufficientStock means a conditional stock decrement matched no row:
	// the product is gone or its remaining stock is below the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock for product")
)

// ErrorDescription returns the error code and constraint name from a Postgres error.
func ErrorDescription(err error) (errCode string, constraintName string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return
}
