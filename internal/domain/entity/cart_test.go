package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCart_SetZeroRemovesEntry(t *testing.T) {
	productID := uuid.New()
	cart := make(Cart)

	cart.Set(productID, "42.0", 2)
	cart.Set(productID, "43.0", 1)
	assert.Len(t, cart.Items(), 2)

	cart.Set(productID, "42.0", 0)
	assert.Equal(t, []CartItem{{ProductID: productID, Size: "43.0", Quantity: 1}}, cart.Items())

	cart.Set(productID, "43.0", 0)
	assert.Empty(t, cart)
}

func TestNewCart_DropsNonPositive(t *testing.T) {
	productID := uuid.New()

	cart := NewCart([]CartItem{
		{ProductID: productID, Size: "42.0", Quantity: 0},
		{ProductID: productID, Size: "44.0", Quantity: 3},
	})

	assert.Equal(t, 0, cart.Quantity(productID, "42.0"))
	assert.Equal(t, 3, cart.Quantity(productID, "44.0"))
	assert.Len(t, cart.Items(), 1)
}
