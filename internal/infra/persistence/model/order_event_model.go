package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderEventModel mirrors the 'order_events' timeline table.
type OrderEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessageID  string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_order_events_on_order"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	Type       string    `gorm:"type:varchar(64);not null"`
	Status     string    `gorm:"type:varchar(32)"`
	PrevStatus string    `gorm:"type:varchar(32)"`
	OccurredAt time.Time `gorm:"not null;index:idx_order_events_on_order"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderEventModel) TableName() string {
	return "order_events"
}

// BeforeCreate assigns the primary key.
func (m *OrderEventModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
