package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput replaces every editable profile field.
type UpdateProfileInput struct {
	Name       string
	Surname    string
	Email      string
	Phone      string
	IdentityNo string
	Gender     string
}

// ProfileOutput is a user together with their address book.
type ProfileOutput struct {
	User      *entity.User
	Addresses []*entity.Address
}

// ProfileUsecase defines operations on the caller's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
