package impl

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     *orderService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	txOrderRepo *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	publisher   *mockService.MockEventPublisher
	payments    *mockService.MockPaymentGateway
	qrCodes     *mockService.MockQRCodeService
	exporter    *mockService.MockOrderReportExporter
	now         time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		payments:    mockService.NewMockPaymentGateway(t),
		qrCodes:     mockService.NewMockQRCodeService(t),
		exporter:    mockService.NewMockOrderReportExporter(t),
		now:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Payments:  fx.payments,
		QRCodes:   fx.qrCodes,
		Exporter:  fx.exporter,
		Sizes:     testSizes(),
		Logger:    newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func (fx orderServiceFixtures) expectTx() {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo).Maybe()
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo).Maybe()
	fx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo).Maybe()
}

func (fx orderServiceFixtures) expectApprovedCharge() {
	fx.payments.EXPECT().Charge(mock.Anything, mock.AnythingOfType("service.PaymentRequest")).
		Return(&service.PaymentResult{Approved: true, Reference: "sim_ref", Simulated: true}, nil)
}

func newShoe(name string, price int64, stock entity.Stock) *entity.Product {
	sizes := make([]entity.Size, 0, len(stock))
	for size := range stock {
		sizes = append(sizes, size)
	}

	return &entity.Product{
		ID:     uuid.New(),
		Name:   name,
		Brand:  "Acme",
		Price:  decimal.NewFromInt(price),
		Sizes:  sizes,
		Images: []string{"https://img.example/" + name + ".png"},
		Stock:  stock,
	}
}

func newPlaceOrderInput(amount int64, items ...usecase.OrderItemInput) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		Items: items,
		Address: entity.ShippingAddress{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Street:    "1 Analytical St",
			City:      "London",
			Zipcode:   "N1",
			Country:   "UK",
			Phone:     "555",
		},
		Amount:        decimal.NewFromInt(amount),
		PaymentMethod: "cod",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	shoe := newShoe("runner", 90, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, shoe.ID, entity.Size("42.0"), 2).Return(true, nil)
	fx.expectApprovedCharge()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEventMessage) bool {
		return e.Type == string(entity.OrderEventPlaced) && e.Status == "placed" && e.UserID == userID.String() && e.ItemCount == 2
	})).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(200,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42", Quantity: 2},
	))

	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.True(t, order.Payment)
	assert.True(t, order.PaymentSimulated)
	assert.Equal(t, "sim_ref", order.PaymentReference)
	assert.Equal(t, entity.PaymentMethodCashOnDelivery, order.PaymentMethod)
	require.Len(t, order.Items, 1)
	assert.Equal(t, entity.LineItem{
		ProductID: shoe.ID,
		Name:      "runner",
		Brand:     "Acme",
		Image:     "https://img.example/runner.png",
		Price:     decimal.NewFromInt(90),
		Size:      "42.0",
		Quantity:  2,
	}, order.Items[0])
}

func TestOrderService_PlaceOrder_MergesDuplicateLines(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	shoe := newShoe("runner", 10, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil).Once()
	fx.productRepo.EXPECT().DecrementStock(ctx, shoe.ID, entity.Size("42.0"), 3).Return(true, nil).Once()
	fx.expectApprovedCharge()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(30,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42", Quantity: 1},
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42.0", Quantity: 2},
	))

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
}

// The last two units of size 42 sell exactly once; the next order finds none.
func TestOrderService_PlaceOrder_LastUnitsThenSoldOut(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	before := &entity.Product{ID: productID, Name: "trail", Price: decimal.NewFromInt(50), Stock: entity.Stock{"42.0": 2}}
	after := &entity.Product{ID: productID, Name: "trail", Price: decimal.NewFromInt(50), Stock: entity.Stock{"42.0": 0}}

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(before, nil).Once()
	fx.productRepo.EXPECT().DecrementStock(ctx, productID, entity.Size("42.0"), 2).Return(true, nil).Once()
	fx.expectApprovedCharge()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil).Once()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(100,
		usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 2},
	))
	require.NoError(t, err)

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(after, nil).Once()

	_, err = fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(50,
		usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 1},
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "trail (42.0)")
}

func TestOrderService_PlaceOrder_GuardedDecrementLosesRace(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	first := newShoe("alpha", 10, entity.Stock{"40.0": 3})
	second := newShoe("beta", 10, entity.Stock{"41.0": 1})
	// Line order follows product id, so pin ids to make "alpha" lock first.
	first.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, first.ID).Return(first, nil)
	fx.productRepo.EXPECT().FindByID(ctx, second.ID).Return(second, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, first.ID, entity.Size("40.0"), 1).Return(true, nil)
	// Another checkout took the last unit between the read and the guarded update.
	fx.productRepo.EXPECT().DecrementStock(ctx, second.ID, entity.Size("41.0"), 1).Return(false, nil)

	_, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(20,
		usecase.OrderItemInput{ProductID: second.ID, Size: "41", Quantity: 1},
		usecase.OrderItemInput{ProductID: first.ID, Size: "40", Quantity: 1},
	))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "beta (41.0)")
	fx.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.cartRepo.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_SizeNotStocked(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	shoe := newShoe("runner", 10, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(10,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "43", Quantity: 1},
	))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	fx.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(10,
		usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 1},
	))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	assert.Contains(t, err.Error(), productID.String())
}

func TestOrderService_PlaceOrder_AmountBelowItemsTotal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	shoe := newShoe("runner", 90, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(100,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42", Quantity: 2},
	))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PaymentDeclinedRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	shoe := newShoe("runner", 10, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, shoe.ID, entity.Size("42.0"), 1).Return(true, nil)
	fx.payments.EXPECT().Charge(ctx, mock.Anything).Return(&service.PaymentResult{Approved: false}, nil)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), newPlaceOrderInput(10,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42", Quantity: 1},
	))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentDeclined))
	fx.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	shoe := newShoe("runner", 10, entity.Stock{"42.0": 5})

	fx.expectTx()
	fx.productRepo.EXPECT().FindByID(ctx, shoe.ID).Return(shoe, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, shoe.ID, entity.Size("42.0"), 1).Return(true, nil)
	fx.expectApprovedCharge()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.PlaceOrder(ctx, userID, newPlaceOrderInput(15,
		usecase.OrderItemInput{ProductID: shoe.ID, Size: "42", Quantity: 1},
	))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestOrderService_PlaceOrder_InputValidation(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.PlaceOrderInput
	}{
		{
			name:  "no items",
			input: newPlaceOrderInput(10),
		},
		{
			name:  "zero quantity",
			input: newPlaceOrderInput(10, usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 0}),
		},
		{
			name:  "missing product id",
			input: newPlaceOrderInput(10, usecase.OrderItemInput{Size: "42", Quantity: 1}),
		},
		{
			name:  "negative amount",
			input: newPlaceOrderInput(-1, usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 1}),
		},
		{
			name: "unknown payment method",
			input: func() *usecase.PlaceOrderInput {
				in := newPlaceOrderInput(10, usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 1})
				in.PaymentMethod = "bitcoin"

				return in
			}(),
		},
		{
			name: "missing address fields",
			input: func() *usecase.PlaceOrderInput {
				in := newPlaceOrderInput(10, usecase.OrderItemInput{ProductID: productID, Size: "42", Quantity: 1})
				in.Address.City = ""

				return in
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func (fx orderServiceFixtures) expectStatusTx() {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
}

func TestOrderService_UpdateStatus_RepeatedStatusIsNoOp(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusDelivered}

	fx.expectStatusTx()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	out, err := fx.service.UpdateStatus(ctx, order.ID, "delivered")

	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, entity.OrderStatusDelivered, out.Order.Status)
	fx.txOrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_MovesForward(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPlaced}

	fx.expectStatusTx()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.txOrderRepo.EXPECT().UpdateStatus(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.Status == entity.OrderStatusShipped
	})).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEventMessage) bool {
		return e.Type == string(entity.OrderEventStatusChanged) && e.Status == "shipped" && e.PrevStatus == "placed"
	})).Return(nil)

	// Skipping "packing" is allowed; the localized label is accepted.
	out, err := fx.service.UpdateStatus(ctx, order.ID, "Kargoya Verildi")

	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, entity.OrderStatusShipped, out.Order.Status)
}

func TestOrderService_UpdateStatus_RejectsBackwards(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusShipped}

	fx.expectStatusTx()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, order.ID, "packing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	fx.txOrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_UnknownStatusAndOrder(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "lost")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		orderID := uuid.New()

		fx.expectStatusTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateStatus(ctx, orderID, "packing")

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, owner, false, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = fx.service.GetOrder(ctx, uuid.New(), true, order.ID)
	require.NoError(t, err)

	_, err = fx.service.GetOrder(ctx, uuid.New(), false, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_ListOrders_CountsWithoutPaging(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	filter := entity.OrderFilter{Status: entity.OrderStatusPlaced, Limit: 10, Offset: 20}
	orders := []*entity.Order{{ID: uuid.New()}}

	fx.orderRepo.EXPECT().List(ctx, filter).Return(orders, nil)
	fx.orderRepo.EXPECT().Count(ctx, entity.OrderFilter{Status: entity.OrderStatusPlaced}).Return(int64(21), nil)

	got, total, err := fx.service.ListOrders(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
	assert.Equal(t, int64(21), total)
}

func TestOrderService_Analytics(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().SummarizeByStatus(ctx, entity.OrderFilter{}).Return([]repository.StatusSummary{
		{Status: entity.OrderStatusPlaced, Count: 2, Revenue: decimal.NewFromInt(100)},
		{Status: entity.OrderStatusShipped, Count: 1, Revenue: decimal.NewFromInt(50)},
		{Status: entity.OrderStatusDelivered, Count: 3, Revenue: decimal.NewFromInt(250)},
	}, nil)
	fx.orderRepo.EXPECT().Count(ctx, mock.MatchedBy(func(f entity.OrderFilter) bool {
		return f.To != nil && f.To.Equal(fx.now)
	})).Return(int64(4), nil)
	fx.orderRepo.EXPECT().Count(ctx, mock.MatchedBy(func(f entity.OrderFilter) bool {
		return f.To != nil && f.To.Equal(fx.now.Add(-analyticsWindow))
	})).Return(int64(2), nil)

	got, err := fx.service.Analytics(ctx, entity.OrderFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(6), got.TotalOrders)
	assert.True(t, decimal.NewFromInt(400).Equal(got.TotalRevenue))
	assert.Equal(t, "66.67", got.AverageOrderValue.StringFixed(2))
	assert.Equal(t, int64(3), got.PendingOrders)
	assert.Equal(t, int64(3), got.DeliveredOrders)
	assert.Equal(t, int64(2), got.ByStatus[entity.OrderStatusPlaced])
	assert.Equal(t, int64(4), got.LastPeriodOrders)
	assert.Equal(t, int64(2), got.PrevPeriodOrders)
}

func TestOrderService_ExportOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.orderRepo.EXPECT().List(ctx, entity.OrderFilter{}).Return(orders, nil)
	fx.exporter.EXPECT().WriteOrders(mock.Anything, orders).RunAndReturn(func(w io.Writer, _ []*entity.Order) error {
		_, err := w.Write([]byte("xlsx"))

		return err
	})
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	fx.exporter.EXPECT().FileExtension().Return(".xlsx")

	var buf bytes.Buffer
	out, err := fx.service.ExportOrders(ctx, entity.OrderFilter{}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "xlsx", buf.String())
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "orders-20260301.xlsx", out.Filename)
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrCodes.EXPECT().GenerateOrderQR(order.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.OrderQRCode(ctx, owner, false, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
