package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	repo "github.com/draperhq/storefront-api/internal/domain/repository"
	"github.com/draperhq/storefront-api/pkg/mailer"
)

// CheckoutService converts a cart into an order, decrementing stock and
// deleting the cart as one atomic unit.
type CheckoutService struct {
	Carts       repo.CartRepository
	Products    repo.ProductRepository
	Orders      repo.OrderRepository
	Users       repo.UserRepository
	Publisher   NotificationPublisher
	Logger      *logrus.Logger
	CompanyName string
	MailEnabled bool
}

type CheckoutInput struct {
	Shipping      entity.ShippingAddress
	PaymentMethod string
}

// Checkout runs the checkout workflow:
//
//  1. Load the cart; an absent or empty cart aborts.
//  2. Re-fetch every product to validate against live stock. Any missing
//     product or short line aborts the whole operation before anything is
//     written.
//  3. Snapshot order items at the product's current price and compute the
//     total as their exact sum; client input is never trusted for money.
//  4. Persist order + stock decrements + cart delete atomically. The
//     repository's conditional decrement re-checks stock, so a concurrent
//     purchase that wins the race rolls this one back instead of driving
//     stock negative.
//  5. Enqueue the confirmation email, best-effort: a dispatch failure is
//     logged and the committed order stands.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, in CheckoutInput) (*entity.Order, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("unknown payment method %q: %w", in.PaymentMethod, apperr.ErrValidation)
	}

	cart, err := s.Carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart empty or not found: %w", apperr.ErrValidation)
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		p, err := s.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("product %s is no longer available: %w", line.ProductName, apperr.ErrValidation)
		}
		if p.Stock < line.Quantity {
			return nil, &apperr.InsufficientStockError{ProductName: p.Name}
		}
		items = append(items, entity.OrderItem{
			ProductID:      p.ID,
			ProductName:    p.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: p.PriceCents,
		})
	}

	order := &entity.Order{
		UserID:        userID,
		Items:         items,
		Shipping:      in.Shipping,
		PaymentMethod: in.PaymentMethod,
	}
	order.TotalCents = order.ItemsTotalCents()

	if err := s.Orders.PlaceOrder(ctx, order, cart.ID); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, order)
	return order, nil
}

// ListMine returns the caller's order history, newest first.
func (s *CheckoutService) ListMine(ctx context.Context, userID string) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// ListAll is the admin ledger view.
func (s *CheckoutService) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.Orders.List(ctx)
}

// Confirm flips the order's confirmation flag. Idempotent. No email is sent
// here; the confirmation email belongs to order creation.
func (s *CheckoutService) Confirm(ctx context.Context, orderID string) (*entity.Order, error) {
	if err := s.Orders.SetConfirmed(ctx, orderID); err != nil {
		return nil, err
	}
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order: %w", apperr.ErrNotFound)
	}
	return o, nil
}

// sendConfirmation enqueues the order-confirmation email. Failures are
// observable in logs but never fail the already-committed order.
func (s *CheckoutService) sendConfirmation(ctx context.Context, o *entity.Order) {
	if !s.MailEnabled || s.Publisher == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, o.UserID)
	if err != nil || u == nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("order_id", o.ID).Warn("confirmation email skipped: user lookup failed")
		}
		return
	}

	lines := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, map[string]any{
			"Name":     it.ProductName,
			"Quantity": it.Quantity,
			"Price":    FormatCents(it.UnitPriceCents),
		})
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateOrderConfirmation,
		Data: map[string]any{
			"Name":    u.FullName(),
			"OrderID": o.ID,
			"Items":   lines,
			"Total":   FormatCents(o.TotalCents),
			"Address": fmt.Sprintf("%s, %s %s, %s", o.Shipping.Street, o.Shipping.City, o.Shipping.PostalCode, o.Shipping.Country),
			"Company": s.CompanyName,
		},
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID).Warn("failed to enqueue confirmation email")
	}
}

// FormatCents renders integer cents as a decimal amount for display.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
