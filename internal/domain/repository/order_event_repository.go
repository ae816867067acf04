package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderEventRepository stores the timeline fed by the order event worker.
type OrderEventRepository interface {
	// Append records the event. It reports false when an event with the same
	// message id was already stored.
	Append(ctx context.Context, event *entity.OrderEvent) (bool, error)

	// ListByOrder returns the order's events, oldest first.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error)
}
