package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address owned by exactly one user.
// ID is the stable identity; Label is display text and may be renamed freely.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Label      string // e.g. "Home", "Work".
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
