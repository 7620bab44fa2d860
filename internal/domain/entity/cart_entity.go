package entity

import "time"

// Cart holds a user's pending purchase. There is at most one cart per user;
// the row is deleted when the cart empties or checkout succeeds.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one (product, quantity) line. Only ProductID and Quantity are
// persisted; the remaining fields are resolved from the live product record
// when the cart is read, so reads always reflect current catalog state.
type CartItem struct {
	ProductID      string
	ProductName    string
	ProductImage   string
	UnitPriceCents int64
	Stock          int
	Quantity       int
	AddedAt        time.Time
}

// Line returns the cart item for productID, or nil if absent.
func (c *Cart) Line(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
