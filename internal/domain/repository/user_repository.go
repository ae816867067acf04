// Package repository holds the persistence contracts the usecases depend on.
// Implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores storefront accounts. Emails are unique
// case-insensitively; writes that would collide return ErrUserAlreadyExists.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create fills in the generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update rewrites the profile, password hash and roles. Addresses and
	// the cart have their own repositories.
	Update(ctx context.Context, user *entity.User) error
}
