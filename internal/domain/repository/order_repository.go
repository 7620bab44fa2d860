package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// OrderRepository defines the interface for the order ledger.
type OrderRepository interface {
	// PlaceOrder atomically persists the order with its items, decrements
	// stock for every line with a conditional decrement-if-sufficient, and
	// deletes the originating cart. If any line's decrement cannot be
	// satisfied the whole transaction rolls back and the error wraps
	// apperr.InsufficientStockError for that product.
	PlaceOrder(ctx context.Context, o *entity.Order, cartID string) error
	// GetByID returns (nil, nil) when no order matches.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	// SetConfirmed flips the confirmation flag. Confirming an already
	// confirmed order is not an error.
	SetConfirmed(ctx context.Context, id string) error
}
