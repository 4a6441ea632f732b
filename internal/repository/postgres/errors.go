package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"

	"quest-tracker/internal/errors"
)

// PostgreSQL error codes
const (
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
	queryCanceledCode    = "57014"
)

// questIDField tags store errors with the quest they concern.
const questIDField = "quest_id"

// MapError converts a driver error into an application error.
// A missing row becomes not found for entityType/id.
func MapError(operation, entityType, id string, err error) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError(entityType, id)
	}

	if IsTimeout(err) {
		return errors.NewTimeoutError(operation, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case notNullViolationCode:
			return errors.NewInvalidInputError(pgErr.ColumnName, "", "must not be null")
		case checkViolationCode:
			return errors.NewInvalidInputError(pgErr.ConstraintName, "", "check constraint violation")
		}
	}

	return errors.NewStoreError(operation, err)
}

// IsTimeout reports whether err came from a cancelled or expired statement.
func IsTimeout(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == queryCanceledCode {
		return true
	}
	return stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled)
}
