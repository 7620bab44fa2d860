package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("Rugs"))
	assert.False(t, ValidCategory("curtains & drapes"), "category match is case sensitive")
	assert.False(t, ValidCategory(""))
}

func TestCartLine(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
	}}

	line := c.Line("b")
	assert.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)

	line.Quantity = 5
	assert.Equal(t, 5, c.Items[1].Quantity, "Line returns a pointer into the cart")

	assert.Nil(t, c.Line("missing"))
}
