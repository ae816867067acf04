// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name       string
	Surname    string
	Email      string
	Password   string
	Phone      string
	IdentityNo string
	Gender     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the session token issued by register and login.
// User is nil for the admin session, which has no user record.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserUsecase defines the interface for registration and session issuance.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	AdminLogin(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
