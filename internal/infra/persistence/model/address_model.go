package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Label is not unique; the id is the identity.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user"`
	Label      string    `gorm:"type:varchar(100);not null"`
	Street     string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns the primary key.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
