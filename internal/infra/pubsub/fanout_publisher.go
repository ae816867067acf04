package pubsub

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// fanOutPublisher mirrors every event to the live order feed before handing
// it to the broker. Feed failures never fail the publish.
type fanOutPublisher struct {
	next   service.EventPublisher
	feed   service.OrderFeed
	logger *slog.Logger
}

// NewFanOutPublisher wraps next so events also reach feed.
func NewFanOutPublisher(next service.EventPublisher, feed service.OrderFeed, logger *slog.Logger) service.EventPublisher {
	return &fanOutPublisher{next: next, feed: feed, logger: logger}
}

func (p *fanOutPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEventMessage) error {
	if err := p.feed.Broadcast(ctx, event); err != nil {
		p.logger.Warn("[FanOut] Failed to push event to live feed",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	return p.next.PublishOrderEvent(ctx, event)
}

func (p *fanOutPublisher) Close() error {
	return p.next.Close()
}
