package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest describes a charge for an order being placed.
type PaymentRequest struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Amount  decimal.Decimal
	Method  string
}

// PaymentResult is the gateway's answer.
type PaymentResult struct {
	Approved  bool
	Reference string
	// Simulated is true when no real processor was contacted.
	Simulated bool
}

// PaymentGateway charges orders.
type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}
