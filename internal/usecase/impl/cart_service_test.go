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

type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	cartRepo  *mockRepo.MockCartRepository
	txCart    *mockRepo.MockCartRepository
}

func createTestCartFixtures(t *testing.T) cartServiceFixtures {
	fx := cartServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		cartRepo:  mockRepo.NewMockCartRepository(t),
		txCart:    mockRepo.NewMockCartRepository(t),
	}
	fx.service = NewCartService(CartServiceParams{
		TxManager: fx.txManager,
		CartRepo:  fx.cartRepo,
		Sizes:     testSizes(),
		Logger:    newDiscardLogger(),
	})
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCart).Maybe()

	return fx
}

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository) {
	fx := createTestCartFixtures(t)

	return fx.service, fx.cartRepo
}

func TestCartService_AddItem_NormalizesSize(t *testing.T) {
	svc, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()
	want := entity.Cart{productID: {"42.0": 1}}

	cartRepo.EXPECT().IncrementItem(ctx, userID, productID, entity.Size("42.0"), 1).Return(nil)
	cartRepo.EXPECT().GetCart(ctx, userID).Return(want, nil)

	cart, err := svc.AddItem(ctx, userID, productID, "42")

	require.NoError(t, err)
	assert.Equal(t, want, cart)
}

func TestCartService_AddItem_UnknownSize(t *testing.T) {
	svc, _ := createTestCartService(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), "99")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSize))
}

// Setting a quantity to zero removes the entry.
func TestCartService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	svc, cartRepo := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	cartRepo.EXPECT().SetItemQuantity(ctx, userID, productID, entity.Size("42.0"), 0).Return(nil)
	cartRepo.EXPECT().GetCart(ctx, userID).Return(entity.Cart{}, nil)

	cart, err := svc.UpdateQuantity(ctx, userID, productID, "42.0", 0)

	require.NoError(t, err)
	assert.Zero(t, cart.Quantity(productID, "42.0"))
	assert.Empty(t, cart)
}

func TestCartService_UpdateQuantity_Negative(t *testing.T) {
	svc, cartRepo := createTestCartService(t)

	_, err := svc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), "42", -1)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	cartRepo.AssertNotCalled(t, "SetItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_ReplaceCart(t *testing.T) {
	fx := createTestCartFixtures(t)
	ctx := context.Background()
	userID, p1, p2 := uuid.New(), uuid.New(), uuid.New()
	want := entity.Cart{p1: {"42.0": 2, "43.5": 1}}

	expectTx(fx.txManager, fx.factory)
	fx.txCart.EXPECT().ReplaceCart(ctx, userID, want).Return(nil)

	cart, err := fx.service.ReplaceCart(ctx, userID, []usecase.CartLine{
		{ProductID: p1, Size: "42", Quantity: 2},
		{ProductID: p1, Size: "43.5", Quantity: 1},
		{ProductID: p2, Size: "40", Quantity: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, want, cart)
	fx.cartRepo.AssertNotCalled(t, "ReplaceCart", mock.Anything, mock.Anything, mock.Anything)
}

// A failed rewrite surfaces through the transaction so the clear is rolled back.
func TestCartService_ReplaceCart_WriteFailureRunsInTransaction(t *testing.T) {
	fx := createTestCartFixtures(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()
	writeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to write cart")

	var rolledBack error
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			rolledBack = fn(fx.factory)

			return rolledBack
		})
	fx.txCart.EXPECT().ReplaceCart(ctx, userID, entity.Cart{productID: {"42.0": 1}}).Return(writeErr)

	cart, err := fx.service.ReplaceCart(ctx, userID, []usecase.CartLine{
		{ProductID: productID, Size: "42", Quantity: 1},
	})

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, writeErr, rolledBack)
	fx.cartRepo.AssertNotCalled(t, "ReplaceCart", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_ReplaceCart_RejectsBeforeTransaction(t *testing.T) {
	fx := createTestCartFixtures(t)

	_, err := fx.service.ReplaceCart(context.Background(), uuid.New(), []usecase.CartLine{
		{ProductID: uuid.New(), Size: "99", Quantity: 1},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSize))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
