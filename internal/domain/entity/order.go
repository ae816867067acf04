package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a snapshot of a product at the time it was ordered.
// Later price or stock changes on the product never touch it.
type LineItem struct {
	ProductID uuid.UUID
	Name      string
	Brand     string
	Image     string
	Price     decimal.Decimal
	Size      Size
	Quantity  int
}

// Subtotal is price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ShippingAddress is copied into the order at checkout.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Order is created at checkout and afterwards mutated only by status updates.
type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Items            []LineItem
	Address          ShippingAddress
	Amount           decimal.Decimal
	PaymentMethod    PaymentMethod
	Payment          bool
	PaymentReference string
	PaymentSimulated bool
	Status           OrderStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ItemsTotal sums the line item subtotals.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount sums the ordered units.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}

// OrderFilter narrows admin order listings. Zero values mean "any".
type OrderFilter struct {
	UserID *uuid.UUID
	Status OrderStatus
	Paid   *bool
	From   *time.Time
	To     *time.Time
	Search string
	Limit  int
	Offset int
}

// OrderAnalytics summarizes a set of orders for the admin dashboard.
type OrderAnalytics struct {
	TotalOrders       int64
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	PendingOrders     int64
	DeliveredOrders   int64
	ByStatus          map[OrderStatus]int64
	LastPeriodOrders  int64
	PrevPeriodOrders  int64
}
