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

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// PlaceOrder runs the whole checkout write set in one transaction: order
// insert, item inserts, a conditional decrement-if-sufficient per product,
// and the cart delete. Stock can never go negative; a line that cannot be
// satisfied rolls everything back.
func (r *OrderRepository) PlaceOrder(ctx context.Context, o *entity.Order, cartID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, street, city, postal_code, country, phone,
		                    payment_method, total_cents, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
		RETURNING id, created_at
	`, o.UserID, o.Shipping.Street, o.Shipping.City, o.Shipping.PostalCode,
		o.Shipping.Country, o.Shipping.Phone, o.PaymentMethod, o.TotalCents)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return err
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPriceCents); err != nil {
			return err
		}

		res, err := tx.Exec(ctx, `
			UPDATE products
			SET stock = stock - $1, in_stock = (stock - $1) > 0, updated_at = now()
			WHERE id = $2 AND stock >= $1
		`, it.Quantity, it.ProductID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return &apperr.InsufficientStockError{ProductName: it.ProductName}
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, street, city, postal_code, country, phone,
		       payment_method, total_cents, confirmed, created_at
		FROM orders
		WHERE id = $1
	`, id)
	if err := scanOrder(row, o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, street, city, postal_code, country, phone,
		       payment_method, total_cents, confirmed, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, street, city, postal_code, country, phone,
		       payment_method, total_cents, confirmed, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
}

func (r *OrderRepository) SetConfirmed(ctx context.Context, id string) error {
	// Idempotent: confirming an already-confirmed order is not an error.
	res, err := r.pool.Exec(ctx, `
		UPDATE orders SET confirmed = true WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row, o *entity.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.Shipping.Street, &o.Shipping.City,
		&o.Shipping.PostalCode, &o.Shipping.Country, &o.Shipping.Phone,
		&o.PaymentMethod, &o.TotalCents, &o.Confirmed, &o.CreatedAt)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		o := entity.Order{}
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, o *entity.Order) error {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		it := entity.OrderItem{}
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPriceCents); err != nil {
			return err
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
