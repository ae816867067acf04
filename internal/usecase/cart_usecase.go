package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLine is one raw entry sent by the client. Size is normalized by the usecase.
type CartLine struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// CartUsecase manages the server-side mirror of the caller's cart. Products and
// stock are not checked here; that happens at checkout.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, size string) (entity.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, size string, quantity int) (entity.Cart, error)
	ReplaceCart(ctx context.Context, userID uuid.UUID, lines []CartLine) (entity.Cart, error)
}
