package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageUpload is one uploaded product image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AddProductInput describes a new catalog entry. Stock keys must be among
// Sizes; sizes without a stock entry start at zero.
type AddProductInput struct {
	Name        string
	Description string
	Brand       string
	Price       decimal.Decimal
	Category    string
	SubCategory string
	Color       string
	Sizes       []string
	Stock       map[string]int
	Bestseller  bool
	NewSeason   bool
	Images      []ImageUpload
}

// UpdateProductInput changes only the fields that are set. A non-nil Stock
// replaces the whole mapping; uploaded images replace the gallery.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Brand       *string
	Price       *decimal.Decimal
	Category    *string
	SubCategory *string
	Color       *string
	Sizes       []string
	Stock       map[string]int
	Bestseller  *bool
	NewSeason   *bool
	Images      []ImageUpload
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	RemoveProduct(ctx context.Context, id uuid.UUID) error
	// Sizes lists the accepted size labels in display order.
	Sizes() []entity.Size
}
