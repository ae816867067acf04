package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// RecordEventInput is one delivery received by the order worker.
type RecordEventInput struct {
	MessageID string
	Event     *service.OrderEventMessage
}

// OrderEventUsecase maintains the order timeline.
type OrderEventUsecase interface {
	// RecordEvent stores the event and reports false for a repeated delivery.
	RecordEvent(ctx context.Context, input *RecordEventInput) (bool, error)
	// Timeline lists an order's events for its owner or an admin.
	Timeline(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]*entity.OrderEvent, error)
}
