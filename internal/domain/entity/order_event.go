package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is one entry of an order's timeline.
type OrderEvent struct {
	ID         uuid.UUID
	MessageID  string // Broker message id; repeated deliveries carry the same value.
	OrderID    uuid.UUID
	UserID     uuid.UUID
	Type       OrderEventType
	Status     OrderStatus
	PrevStatus OrderStatus
	OccurredAt time.Time
	RecordedAt time.Time
}
