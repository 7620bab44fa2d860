package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsTotalCents(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{ProductName: "Linen Blackout Curtains", Quantity: 2, UnitPriceCents: 8999},
		{ProductName: "Curtain Tieback Pair", Quantity: 3, UnitPriceCents: 1299},
	}}
	assert.Equal(t, int64(2*8999+3*1299), o.ItemsTotalCents())

	empty := &Order{}
	assert.Equal(t, int64(0), empty.ItemsTotalCents())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCreditCard))
	assert.True(t, ValidPaymentMethod(PaymentCashOnDelivery))
	assert.False(t, ValidPaymentMethod("wire_transfer"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("Credit_Card"))
}
