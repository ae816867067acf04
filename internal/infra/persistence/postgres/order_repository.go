package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultOrderListLimit = 500

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts an order with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order line rejected by database")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID loads an order with its line items from the primary.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id)
}

// FindByIDForUpdate loads an order and locks its row until the transaction ends.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *orderRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := repo.filtered(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}), filter).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOrderListLimit
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC, id ASC").Limit(limit).Offset(filter.Offset).Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Count returns how many orders match the filter.
func (repo *orderRepository) Count(ctx context.Context, filter entity.OrderFilter) (int64, error) {
	var count int64
	if err := repo.filtered(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SummarizeByStatus groups matching orders by status.
func (repo *orderRepository) SummarizeByStatus(ctx context.Context, filter entity.OrderFilter) ([]repository.StatusSummary, error) {
	var rows []struct {
		Status  string
		Count   int64
		Revenue decimal.Decimal
	}

	if err := repo.filtered(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}), filter).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS revenue").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	summaries := make([]repository.StatusSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, repository.StatusSummary{
			Status:  entity.OrderStatus(row.Status),
			Count:   row.Count,
			Revenue: row.Revenue,
		})
	}

	return summaries, nil
}

// UpdateStatus writes the status and payment flag of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{ID: order.ID}).
		Select("status", "payment", "updated_at").
		Updates(&model.OrderModel{
			Status:    order.Status.String(),
			Payment:   order.Payment,
			UpdatedAt: now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = now

	return nil
}

// filtered applies an OrderFilter to a query on the orders table.
func (repo *orderRepository) filtered(query *gorm.DB, filter entity.OrderFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("orders.user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status.String())
	}
	if filter.Paid != nil {
		query = query.Where("orders.payment = ?", *filter.Paid)
	}
	if filter.From != nil {
		query = query.Where("orders.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("orders.created_at < ?", *filter.To)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			`(orders.address->>'firstName' ILIKE ? OR orders.address->>'lastName' ILIKE ? OR orders.address->>'email' ILIKE ?
			OR EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.name ILIKE ?))`,
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.LineItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Image:     item.Image,
			Price:     item.Price,
			Size:      entity.Size(item.Size),
			Quantity:  item.Quantity,
		})
	}

	addr := data.Address.Data()

	return &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
		Address: entity.ShippingAddress{
			FirstName: addr.FirstName,
			LastName:  addr.LastName,
			Email:     addr.Email,
			Street:    addr.Street,
			City:      addr.City,
			State:     addr.State,
			Zipcode:   addr.Zipcode,
			Country:   addr.Country,
			Phone:     addr.Phone,
		},
		Amount:           data.Amount,
		PaymentMethod:    entity.PaymentMethod(data.PaymentMethod),
		Payment:          data.Payment,
		PaymentReference: data.PaymentReference,
		PaymentSimulated: data.PaymentSimulated,
		Status:           entity.OrderStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Image:     item.Image,
			Price:     item.Price,
			Size:      item.Size.String(),
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:     data.ID,
		UserID: data.UserID,
		Address: datatypes.NewJSONType(model.ShippingAddressData{
			FirstName: data.Address.FirstName,
			LastName:  data.Address.LastName,
			Email:     data.Address.Email,
			Street:    data.Address.Street,
			City:      data.Address.City,
			State:     data.Address.State,
			Zipcode:   data.Address.Zipcode,
			Country:   data.Address.Country,
			Phone:     data.Address.Phone,
		}),
		Amount:           data.Amount,
		PaymentMethod:    data.PaymentMethod.String(),
		Payment:          data.Payment,
		PaymentReference: data.PaymentReference,
		PaymentSimulated: data.PaymentSimulated,
		Status:           data.Status.String(),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Items:            items,
	}
}
