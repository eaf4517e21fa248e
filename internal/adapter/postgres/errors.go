package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// Postgres SQLSTATE codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity name and id. Context cancellation and deadline errors are wrapped
// but keep their identity.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}
