package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

func TestOrderViewWireShape(t *testing.T) {
	o := &entity.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []entity.OrderItem{
			{ProductID: "p1", ProductName: "Sheer Voile Panel", Quantity: 2, UnitPriceCents: 2499},
		},
		Shipping: entity.ShippingAddress{
			Street: "Herengracht 120", City: "Amsterdam", PostalCode: "1015 BT",
			Country: "Netherlands", Phone: "+31201234567",
		},
		PaymentMethod: entity.PaymentCreditCard,
		TotalCents:    4998,
	}

	v := orderView(o)
	assert.Equal(t, int64(4998), v["total_cents"])

	items, ok := v["items"].([]gin.H)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2499), items[0]["unit_price_cents"])

	shipping, ok := v["shipping"].(gin.H)
	require.True(t, ok)
	assert.Equal(t, "+31201234567", shipping["phone"])

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "TotalCents")
	assert.NotContains(t, string(b), "PaymentMethod")
}

func TestProductAndCartViewsUseWireNames(t *testing.T) {
	p := entity.Product{ID: "p1", Name: "Bamboo Roman Shade", PriceCents: 6499, Stock: 35, InStock: true}
	pv := productView(&p)
	assert.Equal(t, int64(6499), pv["price_cents"])
	assert.Equal(t, true, pv["in_stock"])

	ct := &entity.Cart{
		ID: "c1", UserID: "u1",
		Items: []entity.CartItem{{ProductID: "p1", ProductName: p.Name, UnitPriceCents: p.PriceCents, Quantity: 2}},
	}
	cv := cartView(ct)
	lines, ok := cv["items"].([]gin.H)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0]["product_id"])
	assert.Equal(t, int64(6499), lines[0]["unit_price_cents"])
}

func TestListViewsKeepOrder(t *testing.T) {
	stores := []entity.Store{{ID: "s1", Name: "Draper Home Amsterdam"}, {ID: "s2", Name: "Draper Home Rotterdam"}}
	sv := storeViews(stores)
	require.Len(t, sv, 2)
	assert.Equal(t, "s1", sv[0]["id"])
	assert.Equal(t, "s2", sv[1]["id"])

	msgs := []entity.ContactMessage{{ID: "m1", Subject: "Fitting question"}}
	mv := contactViews(msgs)
	require.Len(t, mv, 1)
	assert.Equal(t, "Fitting question", mv[0]["subject"])
}
