package service

import "context"

// OrderFeed pushes order events to connected admin dashboards.
type OrderFeed interface {
	// Broadcast delivers the event to every current subscriber. Slow
	// subscribers are dropped instead of blocking the caller.
	Broadcast(ctx context.Context, event *OrderEventMessage) error
}
