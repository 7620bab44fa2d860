package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// GetByUserID loads the cart and resolves each line against the live product
// record, so callers always see current name, price, image, and stock.
func (r *CartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	c := &entity.Cart{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ci.product_id, p.name, COALESCE(p.images[1], ''), p.price_cents, p.stock, ci.quantity, ci.added_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at
	`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		it := entity.CartItem{}
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.ProductImage,
			&it.UnitPriceCents, &it.Stock, &it.Quantity, &it.AddedAt); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, it)
	}
	return c, rows.Err()
}

func (r *CartRepository) EnsureCart(ctx context.Context, userID string) (string, error) {
	var id string
	// Unique index on user_id enforces one cart per user.
	err := r.pool.QueryRow(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID).Scan(&id)
	return id, err
}

func (r *CartRepository) UpsertItem(ctx context.Context, cartID, productID string, qty int) error {
	// Adding an existing product increments the line in place.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, added_at = now()
	`, cartID, productID, qty)
	return err
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *CartRepository) CountItems(ctx context.Context, cartID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM cart_items WHERE cart_id = $1
	`, cartID).Scan(&n)
	return n, err
}

func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	// cart_items cascade with the cart row.
	res, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

var _ repository.CartRepository = (*CartRepository)(nil)
