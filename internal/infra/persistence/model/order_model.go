package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShippingAddressData is the JSON shape of the address snapshot column.
type ShippingAddressData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID                                `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID                                `gorm:"type:uuid;not null;index"`
	Address          datatypes.JSONType[ShippingAddressData] `gorm:"type:jsonb;not null"`
	Amount           decimal.Decimal                          `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string                                   `gorm:"type:varchar(32);not null"`
	Payment          bool                                     `gorm:"not null;default:false"`
	PaymentReference string                                   `gorm:"type:varchar(64)"`
	PaymentSimulated bool                                     `gorm:"not null;default:true"`
	Status           string                                   `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time                                `gorm:"index"`
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// OrderItemModel is a line item snapshot.
type OrderItemModel struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Brand     string          `gorm:"type:varchar(100)"`
	Image     string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Size      string          `gorm:"type:varchar(16);not null"`
	Quantity  int             `gorm:"not null;check:chk_order_items_quantity_positive,quantity > 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
