package service

import (
	"context"
	"time"
)

// OrderEventMessage is the payload published whenever an order is placed or changes status.
type OrderEventMessage struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prev_status,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	ItemCount  int       `json:"item_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event.
	PublishOrderEvent(ctx context.Context, event *OrderEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
