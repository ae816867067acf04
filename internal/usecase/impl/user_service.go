// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	admin        config.AdminConfig
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var admin config.AdminConfig
	if params.Config != nil && params.Config.Admin != nil {
		admin = *params.Config.Admin
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		admin:        admin,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account and signs them in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if strings.TrimSpace(input.Name) == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Surname:      strings.TrimSpace(input.Surname),
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(input.Phone),
		IdentityNo:   strings.TrimSpace(input.IdentityNo),
		Gender:       strings.TrimSpace(input.Gender),
		Roles:        entity.Roles{entity.RoleUser},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return srv.issue(user.ID, user.Roles, user)
}

// Login verifies a customer's password and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return srv.issue(user.ID, user.Roles, user)
}

// AdminLogin checks the configured operator credentials. The admin has no
// user record; its token subject is derived from the configured email.
func (srv *userService) AdminLogin(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if srv.admin.Email == "" || srv.admin.Password == "" {
		srv.log(ctx).Warn("Admin login attempted without configured credentials")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(normalizeEmail(input.Email)), []byte(normalizeEmail(srv.admin.Email))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(srv.admin.Password)) == 1
	if !emailOK || !passwordOK {
		srv.log(ctx).Warn("Admin login rejected")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Info("Admin logged in")

	return srv.issue(AdminSubject(srv.admin.Email), entity.Roles{entity.RoleAdmin}, nil)
}

func (srv *userService) issue(subject uuid.UUID, roles entity.Roles, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(subject, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: srv.now().Add(srv.tokenService.TokenTTL()),
		User:      user,
	}, nil
}

// AdminSubject is the stable token subject of the operator account.
func AdminSubject(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+normalizeEmail(email)))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
