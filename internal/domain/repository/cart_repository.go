package repository

import (
	"context"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// CartRepository defines the interface for cart persistence. Cart lines
// persist only (product, quantity); GetByUserID resolves product details
// (name, price, image, stock) from the live catalog.
type CartRepository interface {
	// GetByUserID returns the user's cart with resolved items, or (nil, nil)
	// when the user has no cart.
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	// EnsureCart creates the user's cart if absent and returns its id.
	EnsureCart(ctx context.Context, userID string) (string, error)
	// UpsertItem appends a line or increments an existing line's quantity by
	// qty. Increments are additive, never replacing.
	UpsertItem(ctx context.Context, cartID, productID string, qty int) error
	// RemoveItem deletes the matching line. It reports whether a line was
	// removed; a missing line is not an error.
	RemoveItem(ctx context.Context, cartID, productID string) (bool, error)
	// CountItems returns the number of lines left in the cart.
	CountItems(ctx context.Context, cartID string) (int, error)
	// Delete removes the cart row and its lines.
	Delete(ctx context.Context, cartID string) error
}
