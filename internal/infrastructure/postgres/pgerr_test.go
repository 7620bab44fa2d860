package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
)

func TestForeignKeyViolationMapsToConflict(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "order_items_product_id_fkey"}

	err := asConflict(fk, "product has existing orders")
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "product has existing orders")
}

func TestUniqueViolationMapsToConflict(t *testing.T) {
	uq := &pgconn.PgError{Code: "23505", ConstraintName: "products_name_key"}

	require.ErrorIs(t, asConflict(uq, "product name already exists"), apperr.ErrConflict)
}

func TestOtherErrorsPassThrough(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, asConflict(plain, "product has existing orders"))

	// query_canceled is not a constraint violation
	canceled := &pgconn.PgError{Code: "57014"}
	got := asConflict(canceled, "product has existing orders")
	assert.NotErrorIs(t, got, apperr.ErrConflict)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, got, &pgErr)
}
