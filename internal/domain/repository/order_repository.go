package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order id does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// StatusSummary aggregates the orders sharing one status.
type StatusSummary struct {
	Status  entity.OrderStatus
	Count   int64
	Revenue decimal.Decimal
}

// OrderRepository persists orders. Orders are never deleted.
type OrderRepository interface {
	// Create inserts an order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads an order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads an order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// Count returns how many orders match the filter.
	Count(ctx context.Context, filter entity.OrderFilter) (int64, error)

	// SummarizeByStatus groups matching orders by status.
	SummarizeByStatus(ctx context.Context, filter entity.OrderFilter) ([]StatusSummary, error)

	// UpdateStatus writes the status (and payment flag) of an order.
	UpdateStatus(ctx context.Context, order *entity.Order) error
}
