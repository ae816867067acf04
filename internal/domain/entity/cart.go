package entity

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// CartItem is one product/size line of a user's cart.
type CartItem struct {
	ProductID uuid.UUID
	Size      Size
	Quantity  int
}

// Cart maps product id to size to quantity. Entries with quantity 0 do not exist.
type Cart map[uuid.UUID]map[Size]int

// NewCart builds a cart from items, dropping non-positive quantities.
func NewCart(items []CartItem) Cart {
	cart := make(Cart)
	for _, item := range items {
		cart.Set(item.ProductID, item.Size, item.Quantity)
	}

	return cart
}

// Set overwrites a quantity; zero or less removes the entry.
func (c Cart) Set(productID uuid.UUID, size Size, qty int) {
	if qty <= 0 {
		if sizes, ok := c[productID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(c, productID)
			}
		}

		return
	}

	sizes, ok := c[productID]
	if !ok {
		sizes = make(map[Size]int)
		c[productID] = sizes
	}
	sizes[size] = qty
}

// Quantity returns the units in the cart for a product/size.
func (c Cart) Quantity(productID uuid.UUID, size Size) int {
	return c[productID][size]
}

// Items flattens the cart in a deterministic order.
func (c Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c))
	for productID, sizes := range c {
		for size, qty := range sizes {
			if qty > 0 {
				items = append(items, CartItem{ProductID: productID, Size: size, Quantity: qty})
			}
		}
	}

	slices.SortFunc(items, func(a, b CartItem) int {
		if n := cmp.Compare(a.ProductID.String(), b.ProductID.String()); n != 0 {
			return n
		}

		return cmp.Compare(a.Size, b.Size)
	})

	return items
}
