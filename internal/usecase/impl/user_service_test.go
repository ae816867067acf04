package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      *userService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	now          time.Time
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		now:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*userService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func newRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Name:       "Ada",
		Surname:    "Lovelace",
		Email:      "  Ada@Example.com ",
		Password:   "password123",
		Phone:      "555",
		IdentityNo: "12345678901",
		Gender:     "female",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	newID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("password123").Return(nil)
	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(newID, []string{"user"}).Return("jwt", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)

	out, err := fx.service.Register(ctx, newRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, fx.now.Add(time.Hour), out.ExpiresAt)
	require.NotNil(t, out.User)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, out.User.Roles)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, newRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.tokenService.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()
	input.Password = "short"

	fx.hasher.EXPECT().ValidatePasswordStrength("short").
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters"))

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed", Roles: entity.Roles{entity.RoleUser}}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("password123", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(user.ID, []string{"user"}).Return("jwt", nil)
		fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_AdminLogin(t *testing.T) {
	t.Run("configured credentials", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().GenerateToken(AdminSubject("admin@example.com"), []string{"admin"}).Return("admin-jwt", nil)
		fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)

		out, err := fx.service.AdminLogin(context.Background(), &usecase.LoginInput{Email: "Admin@Example.com", Password: "s3cret-admin"})

		require.NoError(t, err)
		assert.Equal(t, "admin-jwt", out.Token)
		assert.Nil(t, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.AdminLogin(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: "guess"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("admin not configured", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.service.admin.Password = ""

		_, err := fx.service.AdminLogin(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: ""})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAdminSubject_IsStable(t *testing.T) {
	assert.Equal(t, AdminSubject("admin@example.com"), AdminSubject(" ADMIN@example.com"))
	assert.NotEqual(t, AdminSubject("admin@example.com"), AdminSubject("other@example.com"))
}
