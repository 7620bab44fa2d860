// Package apperr defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with context via fmt.Errorf("...: %w", ...);
// handlers translate them to HTTP statuses at the request boundary.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or unsatisfiable input.
	ErrValidation = errors.New("invalid request")
	// ErrNotFound marks an absent entity (user, cart, product, order, store).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation, e.g. duplicate registration email.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized marks bad credentials or a missing/invalid session token.
	// Messages built on it must stay generic to avoid account enumeration.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependency marks a downstream failure (email, storage, search).
	ErrDependency = errors.New("dependency failure")
)

// InsufficientStockError identifies the checkout line that cannot be
// satisfied. It aborts the whole checkout; no partial order is created.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}

// IsInsufficientStock reports whether err wraps an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
