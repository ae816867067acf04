package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists the server-side mirror of each user's cart.
type CartRepository interface {
	// GetCart returns the user's cart without zero-quantity entries.
	GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error)

	// IncrementItem adds delta units, creating the entry when missing.
	IncrementItem(ctx context.Context, userID, productID uuid.UUID, size entity.Size, delta int) error

	// SetItemQuantity overwrites a quantity; zero deletes the entry.
	SetItemQuantity(ctx context.Context, userID, productID uuid.UUID, size entity.Size, qty int) error

	// ReplaceCart swaps the whole cart.
	ReplaceCart(ctx context.Context, userID uuid.UUID, cart entity.Cart) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
