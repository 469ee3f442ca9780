package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// SQLSTATE codes the repositories can trip over, keyed to the domain error
// callers branch on.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: inspection number, email, internal order
	"23503": domain.ErrNotFound,      // foreign_key_violation: unknown profile or inspection
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation: status enums, dimensions >= 0
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// raiseException is what the history table's append-only trigger raises.
const raiseException = "P0001"

// MapError translates a driver error into a domain error, prefixed with the
// entity and key it concerns. Context errors are wrapped but never mapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	wrap := func(target error) error {
		return fmt.Errorf("%s %v: %w", entity, key, target)
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return wrap(err)
	}
	if pgErr.Code == raiseException {
		return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.Message, domain.ErrConflict)
	}
	if target, ok := sqlStateErrors[pgErr.Code]; ok {
		return wrap(target)
	}
	return wrap(err)
}
