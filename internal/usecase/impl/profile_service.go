package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user together with their address book.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return &usecase.ProfileOutput{User: user, Addresses: addresses}, nil
}

// UpdateProfile replaces the editable profile fields. Every field is required.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	if missing := missingProfileFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}

		email := normalizeEmail(input.Email)
		if email != user.Email {
			other, findErr := userRepo.FindByEmail(ctx, email)
			if findErr == nil && other.ID != user.ID {
				return errors.WithStack(domainerrors.ErrUserAlreadyExists)
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to look up email")
			}
		}

		user.Name = strings.TrimSpace(input.Name)
		user.Surname = strings.TrimSpace(input.Surname)
		user.Email = email
		user.Phone = strings.TrimSpace(input.Phone)
		user.IdentityNo = strings.TrimSpace(input.IdentityNo)
		user.Gender = strings.TrimSpace(input.Gender)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return updated, nil
}

func missingProfileFields(input *usecase.UpdateProfileInput) []string {
	return missingFields(
		field{"name", input.Name},
		field{"surname", input.Surname},
		field{"email", input.Email},
		field{"phone", input.Phone},
		field{"identityNo", input.IdentityNo},
		field{"gender", input.Gender},
	)
}
