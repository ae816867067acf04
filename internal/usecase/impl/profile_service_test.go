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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	txUserRepo  *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		txUserRepo:  mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:   fx.txManager,
		UserRepo:    fx.userRepo,
		AddressRepo: fx.addressRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func newProfileInput() *usecase.UpdateProfileInput {
	return &usecase.UpdateProfileInput{
		Name:       "Grace",
		Surname:    "Hopper",
		Email:      "Grace@Example.com",
		Phone:      "555",
		IdentityNo: "1",
		Gender:     "female",
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}
	addresses := []*entity.Address{{ID: uuid.New(), UserID: userID, Label: "Home"}}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return(addresses, nil)

	out, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, addresses, out.Addresses)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Name: "Old", Email: "old@example.com"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "grace@example.com").Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, newProfileInput())

	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
	assert.Equal(t, "Hopper", user.Surname)
	assert.Equal(t, "grace@example.com", user.Email)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "old@example.com"}, nil)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "grace@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.UpdateProfile(ctx, userID, newProfileInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.txUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_RequiresAllFields(t *testing.T) {
	fx := createTestProfileService(t)
	input := newProfileInput()
	input.Phone = " "

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "phone")
}
