package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product id does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists catalog entries and their per-size stock.
type ProductRepository interface {
	// Create inserts the product together with its stock rows.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID loads a product with its stock.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// Update writes the descriptive fields of the product. Stock is left untouched.
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceStock swaps the whole stock mapping of a product. Sizes absent from
	// stock are removed; the rest are updated in place.
	ReplaceStock(ctx context.Context, productID uuid.UUID, stock entity.Stock) error

	// DecrementStock removes qty units of size only if at least qty remain.
	// It reports false, with a nil error, when the guard did not match.
	DecrementStock(ctx context.Context, productID uuid.UUID, size entity.Size, qty int) (bool, error)

	// Delete removes the product and its stock rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
