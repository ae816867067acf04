package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderEventRepository implements the domain.OrderEventRepository interface.
type orderEventRepository struct {
	db *gorm.DB
}

// NewOrderEventRepository is the constructor for orderEventRepository.
func NewOrderEventRepository(db *gorm.DB) repository.OrderEventRepository {
	return &orderEventRepository{db: db}
}

// Append inserts the event unless its message id is already stored.
func (repo *orderEventRepository) Append(ctx context.Context, event *entity.OrderEvent) (bool, error) {
	eventM := fromOrderEventDomain(event)

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}},
		DoNothing: true,
	}).Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to append order event")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	event.ID = eventM.ID
	event.RecordedAt = eventM.CreatedAt

	return true, nil
}

// ListByOrder returns the timeline of one order, oldest first.
func (repo *orderEventRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	var rows []*model.OrderEventModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Where("order_id = ?", orderID).
		Order("occurred_at ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	events := make([]*entity.OrderEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toOrderEventDomain(row))
	}

	return events, nil
}

// --- Mapper Functions ---

func toOrderEventDomain(data *model.OrderEventModel) *entity.OrderEvent {
	if data == nil {
		return nil
	}

	return &entity.OrderEvent{
		ID:         data.ID,
		MessageID:  data.MessageID,
		OrderID:    data.OrderID,
		UserID:     data.UserID,
		Type:       entity.OrderEventType(data.Type),
		Status:     entity.OrderStatus(data.Status),
		PrevStatus: entity.OrderStatus(data.PrevStatus),
		OccurredAt: data.OccurredAt,
		RecordedAt: data.CreatedAt,
	}
}

func fromOrderEventDomain(data *entity.OrderEvent) *model.OrderEventModel {
	if data == nil {
		return nil
	}

	return &model.OrderEventModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		OrderID:    data.OrderID,
		UserID:     data.UserID,
		Type:       string(data.Type),
		Status:     data.Status.String(),
		PrevStatus: data.PrevStatus.String(),
		OccurredAt: data.OccurredAt,
	}
}
