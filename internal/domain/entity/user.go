// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Users are never hard-deleted.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // Given name.
	Surname      string    // Family name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never serialized to clients.
	Phone        string
	IdentityNo   string // National identity number.
	Gender       string
	Roles        Roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins name and surname for display.
func (u *User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}

	return u.Name + " " + u.Surname
}
