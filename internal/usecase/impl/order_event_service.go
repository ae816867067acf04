package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderEventService struct {
	eventRepo repository.OrderEventRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	EventRepo repository.OrderEventRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderEventService is the constructor for orderEventService.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		eventRepo: params.EventRepo,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordEvent validates a delivered event and appends it to the timeline.
// Validation failures are AppErrors with a 4xx code so callers can drop them.
func (srv *orderEventService) RecordEvent(ctx context.Context, input *usecase.RecordEventInput) (bool, error) {
	if input == nil || input.Event == nil {
		return false, domainerrors.ErrValidationFailed.WithDetails("event payload is required")
	}
	msg := input.Event

	orderID, err := uuid.Parse(msg.OrderID)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails("invalid order_id")
	}
	userID, err := uuid.Parse(msg.UserID)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}

	eventType := entity.OrderEventType(msg.Type)
	if eventType != entity.OrderEventPlaced && eventType != entity.OrderEventStatusChanged {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown event type " + msg.Type)
	}

	status, ok := entity.ParseOrderStatus(msg.Status)
	if !ok {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown status " + msg.Status)
	}
	var prev entity.OrderStatus
	if msg.PrevStatus != "" {
		if prev, ok = entity.ParseOrderStatus(msg.PrevStatus); !ok {
			return false, domainerrors.ErrValidationFailed.WithDetails("unknown prev_status " + msg.PrevStatus)
		}
	}

	messageID := strings.TrimSpace(input.MessageID)
	if messageID == "" {
		messageID = msg.EventID
	}
	if messageID == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("message id is required")
	}

	occurredAt := msg.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	event := &entity.OrderEvent{
		MessageID:  messageID,
		OrderID:    orderID,
		UserID:     userID,
		Type:       eventType,
		Status:     status,
		PrevStatus: prev,
		OccurredAt: occurredAt,
	}

	inserted, err := srv.eventRepo.Append(ctx, event)
	if err != nil {
		return false, errors.Wrap(err, "failed to append order event")
	}

	if inserted {
		srv.log(ctx).Info("Order event recorded", slog.String("messageID", messageID), slog.Any("orderID", orderID), slog.String("type", msg.Type))
	} else {
		srv.log(ctx).Debug("Duplicate order event ignored", slog.String("messageID", messageID))
	}

	return inserted, nil
}

// Timeline lists an order's events, oldest first.
func (srv *orderEventService) Timeline(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	events, err := srv.eventRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	return events, nil
}
