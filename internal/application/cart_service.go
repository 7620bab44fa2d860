package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
)

// CartService owns per-user cart state and its mutations.
type CartService struct {
	Carts    repo.CartRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

// Get returns the user's cart with product details resolved.
func (s *CartService) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := s.Carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart: %w", apperr.ErrNotFound)
	}
	return cart, nil
}

// AddItem puts qty units of a product in the user's cart, creating the cart
// on first use. Adding a product already in the cart increments its line.
// Stock sufficiency is checked against current product stock at add time;
// checkout re-validates against live stock.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be a positive integer: %w", apperr.ErrValidation)
	}

	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product does not exist: %w", apperr.ErrValidation)
	}
	if !p.InStock || p.Stock < qty {
		return nil, fmt.Errorf("not enough stock for %s: %w", p.Name, apperr.ErrValidation)
	}

	cartID, err := s.Carts.EnsureCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Carts.UpsertItem(ctx, cartID, productID, qty); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveItem drops the matching line. A line that is not present is a no-op,
// not an error; a user without a cart is NotFound. Removing the last line
// deletes the cart itself rather than leaving an empty shell.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Carts.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	left, err := s.Carts.CountItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if left == 0 {
		if err := s.Carts.Delete(ctx, cart.ID); err != nil {
			return nil, err
		}
		return &entity.Cart{UserID: userID}, nil
	}
	return s.Get(ctx, userID)
}

// Clear deletes the cart document entirely.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.Carts.Delete(ctx, cart.ID)
}
