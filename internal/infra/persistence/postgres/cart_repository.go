package postgres

import (
	"context"
	"time"

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

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// GetCart reads the user's cart from the primary so a read right after a write sees it.
func (repo *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	var rows []*model.CartItemModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	items := make([]entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.CartItem{
			ProductID: row.ProductID,
			Size:      entity.Size(row.Size),
			Quantity:  row.Quantity,
		})
	}

	return entity.NewCart(items), nil
}

// IncrementItem adds delta units in a single upsert so concurrent adds never lose an increment.
func (repo *cartRepository) IncrementItem(ctx context.Context, userID, productID uuid.UUID, size entity.Size, delta int) error {
	if delta <= 0 {
		return errors.Errorf("cart increment must be positive, got %d", delta)
	}

	row := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Size:      size.String(),
		Quantity:  delta,
		UpdatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + ?", delta),
			"updated_at": row.UpdatedAt,
		}),
	}).Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart item references an unknown product or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return nil
}

// SetItemQuantity overwrites one entry; a non-positive quantity removes it.
func (repo *cartRepository) SetItemQuantity(ctx context.Context, userID, productID uuid.UUID, size entity.Size, qty int) error {
	db := repo.db.WithContext(ctx)

	if qty <= 0 {
		if err := db.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size.String()).
			Delete(&model.CartItemModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
		}

		return nil
	}

	row := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Size:      size.String(),
		Quantity:  qty,
		UpdatedAt: time.Now(),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart item references an unknown product or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	return nil
}

// ReplaceCart deletes the stored cart and writes the given one. It is not atomic
// on its own; the cart usecase runs it through TransactionManager.
func (repo *cartRepository) ReplaceCart(ctx context.Context, userID uuid.UUID, cart entity.Cart) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	items := cart.Items()
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*model.CartItemModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, &model.CartItemModel{
			UserID:    userID,
			ProductID: item.ProductID,
			Size:      item.Size.String(),
			Quantity:  item.Quantity,
			UpdatedAt: now,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart item references an unknown product or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to write cart")
	}

	return nil
}

// ClearCart removes every entry of the user's cart.
func (repo *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
