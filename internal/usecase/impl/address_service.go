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

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's addresses in creation order.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// UpsertAddress adds or replaces one address and returns the resulting list.
func (srv *addressService) UpsertAddress(ctx context.Context, userID uuid.UUID, input *usecase.UpsertAddressInput) ([]*entity.Address, error) {
	if missing := missingAddressFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	var result []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		existing, err := srv.resolveForUpsert(ctx, addressRepo, userID, input)
		if err != nil {
			return err
		}

		if existing == nil {
			address := &entity.Address{UserID: userID}
			applyAddressInput(address, input)
			if err := addressRepo.CreateAddress(ctx, address); err != nil {
				return errors.Wrap(err, "failed to create address")
			}
			srv.log(ctx).Info("Address created", slog.Any("userID", userID), slog.Any("addressID", address.ID))
		} else {
			applyAddressInput(existing, input)
			if err := addressRepo.UpdateAddress(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update address")
			}
			srv.log(ctx).Info("Address updated", slog.Any("userID", userID), slog.Any("addressID", existing.ID))
		}

		result, err = addressRepo.FindAddressesByUser(ctx, userID)

		return errors.Wrap(err, "failed to list addresses")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert address")
	}

	return result, nil
}

// resolveForUpsert finds the address an upsert replaces, or nil when it appends.
func (srv *addressService) resolveForUpsert(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	userID uuid.UUID,
	input *usecase.UpsertAddressInput,
) (*entity.Address, error) {
	if input.ID != nil {
		return findOwnedAddress(ctx, addressRepo, userID, *input.ID)
	}

	existing, err := addressRepo.FindAddressByLabel(ctx, userID, strings.TrimSpace(input.Label))
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address by label")
	}

	return existing, nil
}

// DeleteAddress removes one address and returns the remaining list.
func (srv *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, input *usecase.DeleteAddressInput) ([]*entity.Address, error) {
	if input.ID == nil && strings.TrimSpace(input.Label) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address id or label is required")
	}

	var result []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var target *entity.Address
		var err error
		if input.ID != nil {
			target, err = findOwnedAddress(ctx, addressRepo, userID, *input.ID)
		} else {
			target, err = addressRepo.FindAddressByLabel(ctx, userID, strings.TrimSpace(input.Label))
			if errors.Is(err, repository.ErrAddressNotFound) {
				err = errors.WithStack(domainerrors.ErrAddressNotFound)
			}
		}
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}
		srv.log(ctx).Info("Address deleted", slog.Any("userID", userID), slog.Any("addressID", target.ID))

		result, err = addressRepo.FindAddressesByUser(ctx, userID)

		return errors.Wrap(err, "failed to list addresses")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete address")
	}

	return result, nil
}

func findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, id uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, id)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.WithStack(domainerrors.ErrAddressNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrAddressOwnershipViolation)
	}

	return address, nil
}

func applyAddressInput(address *entity.Address, input *usecase.UpsertAddressInput) {
	address.Label = strings.TrimSpace(input.Label)
	address.Street = strings.TrimSpace(input.Street)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.TrimSpace(input.State)
	address.PostalCode = strings.TrimSpace(input.PostalCode)
	address.Country = strings.TrimSpace(input.Country)
}

func missingAddressFields(input *usecase.UpsertAddressInput) []string {
	return missingFields(
		field{"label", input.Label},
		field{"street", input.Street},
		field{"city", input.City},
		field{"state", input.State},
		field{"postalCode", input.PostalCode},
		field{"country", input.Country},
	)
}
