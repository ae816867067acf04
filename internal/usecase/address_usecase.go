package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertAddressInput adds or replaces an address. With an ID the address with
// that ID is replaced; without one, an address with the same label is
// replaced, otherwise a new address is appended.
type UpsertAddressInput struct {
	ID         *uuid.UUID
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// DeleteAddressInput selects the address to remove by ID, or by label.
type DeleteAddressInput struct {
	ID    *uuid.UUID
	Label string
}

// AddressUsecase manages the caller's address book. Mutations return the
// resulting list.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	UpsertAddress(ctx context.Context, userID uuid.UUID, input *UpsertAddressInput) ([]*entity.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, input *DeleteAddressInput) ([]*entity.Address, error)
}
