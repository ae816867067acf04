package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	fx := addressServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
	}
	fx.service = NewAddressService(AddressServiceParams{
		TxManager:   fx.txManager,
		AddressRepo: fx.addressRepo,
		Logger:      newDiscardLogger(),
	})
	fx.factory.EXPECT().NewAddressRepository().Return(fx.addressRepo).Maybe()

	return fx
}

func addressInput(label string) *usecase.UpsertAddressInput {
	return &usecase.UpsertAddressInput{
		Label:      label,
		Street:     label + " street 1",
		City:       "Istanbul",
		State:      "Kadikoy",
		PostalCode: "34710",
		Country:    "TR",
	}
}

// Adding Home and Work and then deleting Home leaves only Work.
func TestAddressService_HomeWorkDeleteHome(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	home := &entity.Address{ID: uuid.New(), UserID: userID, Label: "Home"}
	work := &entity.Address{ID: uuid.New(), UserID: userID, Label: "Work"}

	expectTx(fx.txManager, fx.factory)

	fx.addressRepo.EXPECT().FindAddressByLabel(ctx, userID, "Home").Return(nil, repository.ErrAddressNotFound).Once()
	fx.addressRepo.EXPECT().CreateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.Label == "Home" && a.UserID == userID
	})).Return(nil).Once()
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return([]*entity.Address{home}, nil).Once()

	list, err := fx.service.UpsertAddress(ctx, userID, addressInput("Home"))
	require.NoError(t, err)
	assert.Equal(t, []*entity.Address{home}, list)

	fx.addressRepo.EXPECT().FindAddressByLabel(ctx, userID, "Work").Return(nil, repository.ErrAddressNotFound).Once()
	fx.addressRepo.EXPECT().CreateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.Label == "Work"
	})).Return(nil).Once()
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return([]*entity.Address{home, work}, nil).Once()

	list, err = fx.service.UpsertAddress(ctx, userID, addressInput("Work"))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	fx.addressRepo.EXPECT().FindAddressByLabel(ctx, userID, "Home").Return(home, nil).Once()
	fx.addressRepo.EXPECT().DeleteAddress(ctx, home.ID).Return(nil).Once()
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return([]*entity.Address{work}, nil).Once()

	list, err = fx.service.DeleteAddress(ctx, userID, &usecase.DeleteAddressInput{Label: "Home"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Work", list[0].Label)
}

func TestAddressService_UpsertByLabelReplacesInPlace(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	home := &entity.Address{ID: uuid.New(), UserID: userID, Label: "Home", City: "Ankara"}

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindAddressByLabel(ctx, userID, "Home").Return(home, nil)
	fx.addressRepo.EXPECT().UpdateAddress(ctx, home).Return(nil)
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return([]*entity.Address{home}, nil)

	_, err := fx.service.UpsertAddress(ctx, userID, addressInput("Home"))

	require.NoError(t, err)
	assert.Equal(t, "Istanbul", home.City)
	fx.addressRepo.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything)
}

func TestAddressService_UpsertByIDKeepsIdentityOnRelabel(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addr := &entity.Address{ID: uuid.New(), UserID: userID, Label: "Home"}

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindAddressByID(ctx, addr.ID).Return(addr, nil)
	fx.addressRepo.EXPECT().UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ID == addr.ID && a.Label == "Cottage"
	})).Return(nil)
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return([]*entity.Address{addr}, nil)

	input := addressInput("Cottage")
	input.ID = &addr.ID
	list, err := fx.service.UpsertAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, addr.ID, list[0].ID)
	assert.Equal(t, "Cottage", list[0].Label)
}

func TestAddressService_RejectsForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	other := &entity.Address{ID: uuid.New(), UserID: uuid.New(), Label: "Home"}

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindAddressByID(ctx, other.ID).Return(other, nil)

	_, err := fx.service.DeleteAddress(ctx, uuid.New(), &usecase.DeleteAddressInput{ID: &other.ID})

	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
	fx.addressRepo.AssertNotCalled(t, "DeleteAddress", mock.Anything, mock.Anything)
}

func TestAddressService_Validation(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	input := addressInput("Home")
	input.PostalCode = ""
	_, err := fx.service.UpsertAddress(ctx, uuid.New(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.DeleteAddress(ctx, uuid.New(), &usecase.DeleteAddressInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAddressService_DeleteUnknownLabel(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindAddressByLabel(ctx, userID, "Office").Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.DeleteAddress(ctx, userID, &usecase.DeleteAddressInput{Label: "Office"})

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
