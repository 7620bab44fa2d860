package entity

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCreditCard     = "credit_card"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCreditCard || m == PaymentCashOnDelivery
}

// ShippingAddress is captured on the order at checkout. Phone is E.164.
type ShippingAddress struct {
	Street     string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

// Order is an immutable snapshot of a completed purchase. Item prices are
// captured at purchase time and never re-derived from the catalog. The only
// mutation after creation is the admin confirmation flag.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	Shipping      ShippingAddress
	PaymentMethod string
	TotalCents    int64
	Confirmed     bool
	CreatedAt     time.Time
}

// OrderItem snapshots one purchased line: product identity, name, and the
// unit price at the moment of sale.
type OrderItem struct {
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// ItemsTotalCents is the exact sum of quantity times unit price across items.
func (o *Order) ItemsTotalCents() int64 {
	var total int64
	for _, it := range o.Items {
		total += int64(it.Quantity) * it.UnitPriceCents
	}
	return total
}
