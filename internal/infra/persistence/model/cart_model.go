package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is one product/size line of a user's cart.
// Rows with quantity 0 are deleted rather than stored.
type CartItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Size      string    `gorm:"type:varchar(16);primaryKey"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity_positive,quantity > 0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
