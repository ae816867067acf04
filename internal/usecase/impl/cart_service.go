package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	sizes     *entity.SizeCatalog
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Sizes     *entity.SizeCatalog
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		sizes:     params.Sizes,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	cart, err := srv.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem adds one unit of the product in the given size.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, size string) (entity.Cart, error) {
	normalized, err := srv.normalizeSize(size)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.IncrementItem(ctx, userID, productID, normalized, 1); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}
	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.Any("productID", productID), slog.String("size", normalized.String()))

	return srv.GetCart(ctx, userID)
}

// UpdateQuantity overwrites a quantity. Zero removes the entry.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, size string, quantity int) (entity.Cart, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	normalized, err := srv.normalizeSize(size)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.SetItemQuantity(ctx, userID, productID, normalized, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}
	srv.log(ctx).Debug("Cart item updated", slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return srv.GetCart(ctx, userID)
}

// ReplaceCart mirrors the whole client-side cart. The clear and the rewrite
// share one transaction so a failed write keeps the previous cart.
func (srv *cartService) ReplaceCart(ctx context.Context, userID uuid.UUID, lines []usecase.CartLine) (entity.Cart, error) {
	cart := make(entity.Cart)
	for i, line := range lines {
		if line.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("item " + strconv.Itoa(i) + ": quantity must not be negative")
		}

		normalized, err := srv.normalizeSize(line.Size)
		if err != nil {
			return nil, err
		}
		cart.Set(line.ProductID, normalized, line.Quantity)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCartRepository().ReplaceCart(ctx, userID, cart)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace cart")
	}
	srv.log(ctx).Debug("Cart replaced", slog.Any("userID", userID), slog.Int("lines", len(lines)))

	return cart, nil
}

func (srv *cartService) normalizeSize(raw string) (entity.Size, error) {
	size, ok := srv.sizes.Normalize(raw)
	if !ok {
		return "", domainerrors.ErrInvalidSize.WithDetails(strconv.Quote(raw))
	}

	return size, nil
}
