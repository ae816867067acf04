package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Brand       string                      `gorm:"type:varchar(100)"`
	Price       decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	Category    string                      `gorm:"type:varchar(100);index"`
	SubCategory string                      `gorm:"type:varchar(100);index"`
	Color       string                      `gorm:"type:varchar(50)"`
	Sizes       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Bestseller  bool                        `gorm:"not null;default:false"`
	NewSeason   bool                        `gorm:"not null;default:false"`
	CreatedAt   time.Time                   `gorm:"index"`
	UpdatedAt   time.Time

	Stocks []ProductStockModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// ProductStockModel holds the units left for one size of a product.
// The check constraint keeps quantities non-negative even if a caller skips the guarded decrement.
type ProductStockModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Size      string    `gorm:"type:varchar(16);primaryKey"`
	Quantity  int       `gorm:"not null;default:0;check:chk_product_stocks_quantity_non_negative,quantity >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductStockModel) TableName() string {
	return "product_stocks"
}
