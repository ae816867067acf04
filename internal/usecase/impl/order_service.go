package impl

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// analyticsWindow is the length of the periods compared by Analytics.
const analyticsWindow = 30 * 24 * time.Hour

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	payments  service.PaymentGateway
	qrCodes   service.QRCodeService
	exporter  service.OrderReportExporter
	sizes     *entity.SizeCatalog
	now       func() time.Time
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Payments  service.PaymentGateway
	QRCodes   service.QRCodeService
	Exporter  service.OrderReportExporter
	Sizes     *entity.SizeCatalog
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		payments:  params.Payments,
		qrCodes:   params.QRCodes,
		exporter:  params.Exporter,
		sizes:     params.Sizes,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// reservation is one merged checkout line bound to its loaded product.
type reservation struct {
	productID uuid.UUID
	size      entity.Size
	quantity  int
	product   *entity.Product
}

// PlaceOrder reserves stock for every line, charges the order and records it
// in one transaction. Either every line is reserved and the order exists, or
// nothing changed.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	method, err := validatePlaceOrder(input)
	if err != nil {
		return nil, err
	}

	lines := srv.mergeLines(input.Items)
	srv.log(ctx).Info("Placing order", slog.Any("userID", userID), slog.Int("lines", len(lines)), slog.String("amount", input.Amount.String()))

	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Address:       input.Address,
		Amount:        input.Amount,
		PaymentMethod: method,
		Status:        entity.OrderStatusPlaced,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if err := loadReservations(ctx, productRepo, lines); err != nil {
			return err
		}

		order.Items = lineItems(lines)
		if total := order.ItemsTotal(); order.Amount.LessThan(total) {
			return domainerrors.ErrValidationFailed.WithDetails("amount " + order.Amount.StringFixed(2) + " is below the items total " + total.StringFixed(2))
		}

		for _, line := range lines {
			ok, err := productRepo.DecrementStock(ctx, line.productID, line.size, line.quantity)
			if err != nil {
				return errors.Wrap(err, "failed to reserve stock")
			}
			if !ok {
				return errors.WithStack(domainerrors.NewInsufficientStockError(line.product.Name, line.size.String()))
			}
		}

		result, err := srv.payments.Charge(ctx, service.PaymentRequest{
			OrderID: order.ID,
			UserID:  userID,
			Amount:  order.Amount,
			Method:  method.String(),
		})
		if err != nil {
			return errors.Wrap(err, "payment failed")
		}
		if !result.Approved {
			return errors.WithStack(domainerrors.ErrPaymentDeclined)
		}
		order.Payment = true
		order.PaymentReference = result.Reference
		order.PaymentSimulated = result.Simulated

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := repoFactory.NewCartRepository().ClearCart(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.Any("userID", userID), slog.String("paymentReference", order.PaymentReference))
	srv.publish(ctx, order, entity.OrderEventPlaced, "")

	return order, nil
}

func validatePlaceOrder(input *usecase.PlaceOrderInput) (entity.PaymentMethod, error) {
	if len(input.Items) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("order has no items")
	}
	for i, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return "", domainerrors.ErrValidationFailed.WithDetails("item " + strconv.Itoa(i) + ": product id is required")
		}
		if item.Quantity < 1 {
			return "", domainerrors.ErrValidationFailed.WithDetails("item " + strconv.Itoa(i) + ": quantity must be at least 1")
		}
	}
	if input.Amount.IsNegative() {
		return "", domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	addr := input.Address
	if missing := missingFields(
		field{"firstName", addr.FirstName},
		field{"lastName", addr.LastName},
		field{"street", addr.Street},
		field{"city", addr.City},
		field{"country", addr.Country},
	); len(missing) > 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("address is missing: " + strings.Join(missing, ", "))
	}

	method, ok := entity.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + strconv.Quote(input.PaymentMethod))
	}

	return method, nil
}

// mergeLines sums duplicate product/size lines and orders them by product id
// then size, so concurrent checkouts lock stock rows in the same order.
func (srv *orderService) mergeLines(items []usecase.OrderItemInput) []*reservation {
	type key struct {
		productID uuid.UUID
		size      entity.Size
	}

	merged := make(map[key]*reservation, len(items))
	lines := make([]*reservation, 0, len(items))
	for _, item := range items {
		size, ok := srv.sizes.Normalize(item.Size)
		if !ok {
			// Kept verbatim so the stock lookup reports it as unavailable.
			size = entity.Size(strings.TrimSpace(item.Size))
		}

		k := key{productID: item.ProductID, size: size}
		if line, ok := merged[k]; ok {
			line.quantity += item.Quantity

			continue
		}
		line := &reservation{productID: item.ProductID, size: size, quantity: item.Quantity}
		merged[k] = line
		lines = append(lines, line)
	}

	slices.SortFunc(lines, func(a, b *reservation) int {
		if n := cmp.Compare(a.productID.String(), b.productID.String()); n != 0 {
			return n
		}

		return cmp.Compare(a.size, b.size)
	})

	return lines
}

// loadReservations resolves every line's product and checks the size is stocked.
func loadReservations(ctx context.Context, productRepo repository.ProductRepository, lines []*reservation) error {
	products := make(map[uuid.UUID]*entity.Product)
	for _, line := range lines {
		product, ok := products[line.productID]
		if !ok {
			found, err := productRepo.FindByID(ctx, line.productID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.NewProductNotFoundError(line.productID.String()))
			}
			if err != nil {
				return errors.Wrap(err, "failed to load product")
			}
			product = found
			products[line.productID] = product
		}
		line.product = product

		available, stocked := product.Stock.Available(line.size)
		if !stocked || available < line.quantity {
			return errors.WithStack(domainerrors.NewInsufficientStockError(product.Name, line.size.String()))
		}
	}

	return nil
}

func lineItems(lines []*reservation) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.LineItem{
			ProductID: line.productID,
			Name:      line.product.Name,
			Brand:     line.product.Brand,
			Image:     line.product.FirstImage(),
			Price:     line.product.Price,
			Size:      line.size,
			Quantity:  line.quantity,
		})
	}

	return items
}

// ListUserOrders returns the caller's orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, entity.OrderFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// GetOrder loads an order visible to the requester.
func (srv *orderService) GetOrder(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !isAdmin && order.UserID != requesterID {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return order, nil
}

// ListOrders returns matching orders and the total number of matches.
func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	countFilter := filter
	countFilter.Limit, countFilter.Offset = 0, 0
	total, err := srv.orderRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	return orders, total, nil
}

// UpdateStatus moves an order forward. Repeating the current status is a no-op.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*usecase.UpdateStatusOutput, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + strconv.Quote(status))
	}

	var (
		order   *entity.Order
		prev    entity.OrderStatus
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrOrderNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found
		prev = found.Status

		if prev == next {
			return nil
		}
		if !prev.CanTransitionTo(next) {
			return errors.WithStack(domainerrors.ErrInvalidStatusTransition.WithDetails(prev.String() + " -> " + next.String()))
		}

		order.Status = next
		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		changed = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	if changed {
		srv.log(ctx).Info("Order status changed", slog.Any("orderID", orderID), slog.String("from", prev.String()), slog.String("to", next.String()))
		srv.publish(ctx, order, entity.OrderEventStatusChanged, prev)
	}

	return &usecase.UpdateStatusOutput{Order: order, Changed: changed}, nil
}

// Analytics aggregates the orders matching the filter and compares the last
// two 30 day windows.
func (srv *orderService) Analytics(ctx context.Context, filter entity.OrderFilter) (*entity.OrderAnalytics, error) {
	filter.Limit, filter.Offset = 0, 0

	summaries, err := srv.orderRepo.SummarizeByStatus(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	analytics := &entity.OrderAnalytics{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		ByStatus:          make(map[entity.OrderStatus]int64, len(summaries)),
	}
	for _, summary := range summaries {
		analytics.TotalOrders += summary.Count
		analytics.TotalRevenue = analytics.TotalRevenue.Add(summary.Revenue)
		analytics.ByStatus[summary.Status] += summary.Count
		if summary.Status == entity.OrderStatusDelivered {
			analytics.DeliveredOrders += summary.Count
		} else {
			analytics.PendingOrders += summary.Count
		}
	}
	if analytics.TotalOrders > 0 {
		analytics.AverageOrderValue = analytics.TotalRevenue.Div(decimal.NewFromInt(analytics.TotalOrders)).Round(2)
	}

	now := srv.now()
	lastStart := now.Add(-analyticsWindow)
	prevStart := lastStart.Add(-analyticsWindow)

	if analytics.LastPeriodOrders, err = srv.countBetween(ctx, filter, lastStart, now); err != nil {
		return nil, err
	}
	if analytics.PrevPeriodOrders, err = srv.countBetween(ctx, filter, prevStart, lastStart); err != nil {
		return nil, err
	}

	return analytics, nil
}

func (srv *orderService) countBetween(ctx context.Context, filter entity.OrderFilter, from, to time.Time) (int64, error) {
	filter.From, filter.To = &from, &to

	count, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders in window")
	}

	return count, nil
}

// ExportOrders renders the matching orders as a report into w.
func (srv *orderService) ExportOrders(ctx context.Context, filter entity.OrderFilter, w io.Writer) (*usecase.ExportOutput, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders for export")
	}

	if err := srv.exporter.WriteOrders(w, orders); err != nil {
		return nil, errors.Wrap(err, "failed to render order report")
	}
	srv.log(ctx).Info("Orders exported", slog.Int("count", len(orders)))

	return &usecase.ExportOutput{
		ContentType: srv.exporter.ContentType(),
		Filename:    "orders-" + srv.now().Format("20060102") + srv.exporter.FileExtension(),
		Count:       len(orders),
	}, nil
}

// OrderQRCode renders the tracking QR code of an order visible to the requester.
func (srv *orderService) OrderQRCode(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, requesterID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// publish sends an order event after commit. Failures are logged only; the
// order change is already durable.
func (srv *orderService) publish(ctx context.Context, order *entity.Order, eventType entity.OrderEventType, prev entity.OrderStatus) {
	event := &service.OrderEventMessage{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       string(eventType),
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		PrevStatus: prev.String(),
		Amount:     order.Amount.String(),
		ItemCount:  order.ItemCount(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", event.Type),
			slog.Any("orderID", order.ID),
			slog.Any("error", err))
	}
}
