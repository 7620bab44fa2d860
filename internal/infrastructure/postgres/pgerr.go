package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
)

// SQLSTATE codes for constraint violations.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// asConflict converts foreign-key and unique violations into the conflict
// sentinel with msg as the caller-facing text. Any other error passes
// through unchanged.
func asConflict(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation, codeUniqueViolation:
			return fmt.Errorf("%s: %w", msg, apperr.ErrConflict)
		}
	}
	return err
}
