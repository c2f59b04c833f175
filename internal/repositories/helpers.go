package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "gardgear/pkg/errors"
)

// translateNoRows maps the driver's empty-result error onto the
// application sentinel so callers never import pgx directly.
func translateNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

// translateConstraint maps unique-violation errors (Postgres code 23505)
// onto the duplicate-serial sentinel.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.ErrDuplicateSerial
	}
	return err
}
