package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line of a checkout.
type OrderItemInput struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// PlaceOrderInput is a checkout request. Amount is what the client charges,
// including any delivery fee, and may not be below the items total.
type PlaceOrderInput struct {
	Items         []OrderItemInput
	Address       entity.ShippingAddress
	Amount        decimal.Decimal
	PaymentMethod string
}

// UpdateStatusOutput reports the order after a status update and whether anything changed.
type UpdateStatusOutput struct {
	Order   *entity.Order
	Changed bool
}

// ExportOutput describes a rendered order report.
type ExportOutput struct {
	ContentType string
	Filename    string
	Count       int
}

// OrderUsecase covers checkout, order history and the admin order views.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*UpdateStatusOutput, error)
	Analytics(ctx context.Context, filter entity.OrderFilter) (*entity.OrderAnalytics, error)
	ExportOrders(ctx context.Context, filter entity.OrderFilter, w io.Writer) (*ExportOutput, error)
	OrderQRCode(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]byte, error)
}
