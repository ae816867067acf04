package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name         string                      `gorm:"type:varchar(100);not null"`
	Surname      string                      `gorm:"type:varchar(100);not null"`
	Email        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Phone        string                      `gorm:"type:varchar(32)"`
	IdentityNo   string                      `gorm:"type:varchar(32)"`
	Gender       string                      `gorm:"type:varchar(16)"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Addresses []AddressModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CartItems []CartItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
