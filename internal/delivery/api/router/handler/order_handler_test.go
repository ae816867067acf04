package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orderUC      *mockusecase.MockOrderUsecase
	orderEventUC *mockusecase.MockOrderEventUsecase
	userID       uuid.UUID
	adminID      uuid.UUID
	user         *echo.Echo
	admin        *echo.Echo
}

// setupOrderHandler serves the same routes twice: once as a customer and once as the admin.
func setupOrderHandler(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		orderUC:      mockusecase.NewMockOrderUsecase(t),
		orderEventUC: mockusecase.NewMockOrderEventUsecase(t),
		userID:       uuid.New(),
		adminID:      uuid.New(),
	}
	h := NewOrderHandler(OrderHandlerParams{
		OrderUC:      f.orderUC,
		OrderEventUC: f.orderEventUC,
		Feed: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusSwitchingProtocols)
		}),
		Logger: newDiscardLogger(),
	})

	register := func(e *echo.Echo, mw echo.MiddlewareFunc) {
		g := e.Group("/api/order", mw)
		g.POST("/place", h.PlaceOrder)
		g.POST("/stripe", h.PlaceOrderStripe)
		g.POST("/razorpay", h.PlaceOrderRazorpay)
		g.POST("/userorders", h.UserOrders)
		g.POST("/list", h.ListOrders)
		g.POST("/status", h.UpdateStatus)
		g.GET("/analytics", h.Analytics)
		g.GET("/export", h.Export)
		g.GET("/feed", h.Feed)
		g.GET("/:id", h.GetOrder)
		g.GET("/:id/qr", h.QRCode)
		g.GET("/:id/timeline", h.Timeline)
	}

	f.user = newTestEcho()
	register(f.user, as(f.userID, entity.RoleUser))
	f.admin = newTestEcho()
	register(f.admin, as(f.adminID, entity.RoleAdmin))

	return f
}

func sampleOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.LineItem{{
			ProductID: uuid.New(),
			Name:      "Runner",
			Price:     decimal.RequireFromString("50.00"),
			Size:      "42.0",
			Quantity:  2,
		}},
		Amount:        decimal.RequireFromString("110.00"),
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		Payment:       true,
		Status:        entity.OrderStatusPlaced,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

const placeOrderBody = `{
	"items":[{"_id":"%s","size":"42","quantity":2}],
	"amount":110,
	"address":{"firstName":"Ada","lastName":"Lovelace","street":"1 Main","city":"Izmir","country":"TR"},
	"paymentMethod":"cod"
}`

func TestOrderHandler_PlaceOrder(t *testing.T) {
	f := setupOrderHandler(t)
	order := sampleOrder(f.userID)
	productID := order.Items[0].ProductID

	f.orderUC.EXPECT().
		PlaceOrder(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return len(in.Items) == 1 &&
				in.Items[0].ProductID == productID &&
				in.Items[0].Size == "42" &&
				in.Items[0].Quantity == 2 &&
				in.Amount.Equal(decimal.NewFromInt(110)) &&
				in.Address.FirstName == "Ada" &&
				in.PaymentMethod == "cod"
		})).
		Return(order, nil)

	rec := doJSON(f.user, http.MethodPost, "/api/order/place", fmt.Sprintf(placeOrderBody, productID))

	requireStatus(t, rec, http.StatusCreated)
	out := decodeData[OrderResponse](t, rec)
	assert.Equal(t, order.ID.String(), out.ID)
	assert.InDelta(t, 110.0, out.Amount, 0.001)
	assert.Equal(t, "placed", out.Status)
	assert.Equal(t, "Sipariş Verildi", out.StatusLabel)
	assert.Equal(t, order.CreatedAt.UnixMilli(), out.Date)
}

func TestOrderHandler_PlaceOrder_ForcedGateway(t *testing.T) {
	tests := []struct {
		path   string
		method entity.PaymentMethod
	}{
		{path: "/api/order/stripe", method: entity.PaymentMethodStripe},
		{path: "/api/order/razorpay", method: entity.PaymentMethodRazorpay},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := setupOrderHandler(t)
			order := sampleOrder(f.userID)
			order.PaymentMethod = tt.method

			f.orderUC.EXPECT().
				PlaceOrder(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
					return in.PaymentMethod == tt.method.String()
				})).
				Return(order, nil)

			rec := doJSON(f.user, http.MethodPost, tt.path, fmt.Sprintf(placeOrderBody, order.Items[0].ProductID))

			requireStatus(t, rec, http.StatusCreated)
		})
	}
}

func TestOrderHandler_PlaceOrder_InsufficientStock(t *testing.T) {
	f := setupOrderHandler(t)

	f.orderUC.EXPECT().
		PlaceOrder(mock.Anything, f.userID, mock.Anything).
		Return(nil, domainerrors.NewInsufficientStockError("Runner", "42.0"))

	rec := doJSON(f.user, http.MethodPost, "/api/order/place", fmt.Sprintf(placeOrderBody, uuid.New()))

	requireStatus(t, rec, http.StatusConflict)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
	assert.Equal(t, "insufficient stock: Runner (42.0)", env.Message)
}

func TestOrderHandler_PlaceOrder_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no items", body: `{"items":[],"amount":1}`},
		{name: "zero quantity", body: `{"items":[{"_id":"` + uuid.NewString() + `","size":"42","quantity":0}],"amount":1}`},
		{name: "bad product id", body: `{"items":[{"_id":"x","size":"42","quantity":1}],"amount":1}`},
		{name: "malformed json", body: `{"items":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupOrderHandler(t)

			rec := doJSON(f.user, http.MethodPost, "/api/order/place", tt.body)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.False(t, decodeEnvelope(t, rec).Success)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		f := setupOrderHandler(t)
		order := sampleOrder(f.userID)
		order.Status = entity.OrderStatusShipped

		f.orderUC.EXPECT().UpdateStatus(mock.Anything, order.ID, "Kargoya Verildi").
			Return(&usecase.UpdateStatusOutput{Order: order, Changed: true}, nil)

		rec := doJSON(f.admin, http.MethodPost, "/api/order/status", `{"orderId":"`+order.ID.String()+`","status":"Kargoya Verildi"}`)

		requireStatus(t, rec, http.StatusOK)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Status Updated", env.Message)
	})

	t.Run("repeated status is a no-op", func(t *testing.T) {
		f := setupOrderHandler(t)
		order := sampleOrder(f.userID)
		order.Status = entity.OrderStatusDelivered

		f.orderUC.EXPECT().UpdateStatus(mock.Anything, order.ID, "delivered").
			Return(&usecase.UpdateStatusOutput{Order: order, Changed: false}, nil)

		rec := doJSON(f.admin, http.MethodPost, "/api/order/status", `{"orderId":"`+order.ID.String()+`","status":"delivered"}`)

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "Status unchanged", decodeEnvelope(t, rec).Message)
	})

	t.Run("backwards", func(t *testing.T) {
		f := setupOrderHandler(t)
		orderID := uuid.New()

		f.orderUC.EXPECT().UpdateStatus(mock.Anything, orderID, "placed").
			Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("delivered -> placed"))

		rec := doJSON(f.admin, http.MethodPost, "/api/order/status", `{"orderId":"`+orderID.String()+`","status":"placed"}`)

		requireStatus(t, rec, http.StatusConflict)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
		assert.Equal(t, "delivered -> placed", env.Error.Details)
	})
}

func TestOrderHandler_ListOrders_Filter(t *testing.T) {
	f := setupOrderHandler(t)
	paid := false
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)

	f.orderUC.EXPECT().
		ListOrders(mock.Anything, entity.OrderFilter{
			Status: entity.OrderStatusShipped,
			Paid:   &paid,
			From:   &from,
			To:     &to,
			Search: "ada",
			Limit:  20,
		}).
		Return([]*entity.Order{sampleOrder(f.userID)}, int64(41), nil)

	rec := doJSON(f.admin, http.MethodPost, "/api/order/list",
		`{"status":"shipped","payment":"pending","from":"2026-01-01","to":"2026-01-31","search":"ada","limit":20}`)

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[OrderListResponse](t, rec)
	assert.Equal(t, int64(41), out.Total)
	assert.Len(t, out.Orders, 1)
}

func TestOrderHandler_ListOrders_BadFilter(t *testing.T) {
	tests := []string{
		`{"status":"lost"}`,
		`{"payment":"maybe"}`,
		`{"from":"yesterday"}`,
		`{"limit":-1}`,
	}

	for _, body := range tests {
		t.Run(body, func(t *testing.T) {
			f := setupOrderHandler(t)

			rec := doJSON(f.admin, http.MethodPost, "/api/order/list", body)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestOrderHandler_Analytics(t *testing.T) {
	f := setupOrderHandler(t)

	f.orderUC.EXPECT().Analytics(mock.Anything, entity.OrderFilter{}).Return(&entity.OrderAnalytics{
		TotalOrders:       3,
		TotalRevenue:      decimal.RequireFromString("300"),
		AverageOrderValue: decimal.RequireFromString("100"),
		PendingOrders:     2,
		DeliveredOrders:   1,
		ByStatus:          map[entity.OrderStatus]int64{entity.OrderStatusDelivered: 1, entity.OrderStatusPlaced: 2},
		LastPeriodOrders:  3,
	}, nil)

	rec := doJSON(f.admin, http.MethodGet, "/api/order/analytics", "")

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[AnalyticsResponse](t, rec)
	assert.Equal(t, int64(3), out.TotalOrders)
	assert.InDelta(t, 100.0, out.AverageOrderValue, 0.001)
	assert.Equal(t, int64(2), out.ByStatus["placed"])
	assert.Equal(t, int64(3), out.Last30Days)
}

func TestOrderHandler_Export(t *testing.T) {
	f := setupOrderHandler(t)

	f.orderUC.EXPECT().
		ExportOrders(mock.Anything, entity.OrderFilter{Status: entity.OrderStatusDelivered}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.OrderFilter, w io.Writer) (*usecase.ExportOutput, error) {
			_, err := w.Write([]byte("xlsx-bytes"))

			return &usecase.ExportOutput{
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Filename:    "orders-20260102.xlsx",
				Count:       4,
			}, err
		})

	rec := doJSON(f.admin, http.MethodGet, "/api/order/export?status=delivered", "")

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `"orders-20260102.xlsx"`)
	assert.Equal(t, "4", rec.Header().Get("X-Order-Count"))
}

func TestOrderHandler_QRCode(t *testing.T) {
	f := setupOrderHandler(t)
	orderID := uuid.New()

	f.orderUC.EXPECT().OrderQRCode(mock.Anything, f.userID, false, orderID).Return([]byte("png"), nil)

	rec := doJSON(f.user, http.MethodGet, "/api/order/"+orderID.String()+"/qr", "")

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
}

func TestOrderHandler_GetOrder_AdminFlag(t *testing.T) {
	f := setupOrderHandler(t)
	order := sampleOrder(uuid.New())

	f.orderUC.EXPECT().GetOrder(mock.Anything, f.adminID, true, order.ID).Return(order, nil)

	rec := doJSON(f.admin, http.MethodGet, "/api/order/"+order.ID.String(), "")

	requireStatus(t, rec, http.StatusOK)
}

func TestOrderHandler_Timeline_Forbidden(t *testing.T) {
	f := setupOrderHandler(t)
	orderID := uuid.New()

	f.orderEventUC.EXPECT().Timeline(mock.Anything, f.userID, false, orderID).Return(nil, domainerrors.ErrForbidden)

	rec := doJSON(f.user, http.MethodGet, "/api/order/"+orderID.String()+"/timeline", "")

	requireStatus(t, rec, http.StatusForbidden)
	assert.Empty(t, decodeEnvelope(t, rec).Error.Details)
}

func TestOrderHandler_Timeline(t *testing.T) {
	f := setupOrderHandler(t)
	orderID := uuid.New()
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	f.orderEventUC.EXPECT().Timeline(mock.Anything, f.userID, false, orderID).Return([]*entity.OrderEvent{
		{OrderID: orderID, Type: entity.OrderEventPlaced, Status: entity.OrderStatusPlaced, OccurredAt: at},
		{OrderID: orderID, Type: entity.OrderEventStatusChanged, Status: entity.OrderStatusShipped, PrevStatus: entity.OrderStatusPlaced, OccurredAt: at.Add(time.Hour)},
	}, nil)

	rec := doJSON(f.user, http.MethodGet, "/api/order/"+orderID.String()+"/timeline", "")

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[[]OrderEventResponse](t, rec)
	require.Len(t, out, 2)
	assert.Equal(t, "order.status_changed", out[1].Type)
	assert.Equal(t, "placed", out[1].PrevStatus)
}

func TestOrderHandler_Feed(t *testing.T) {
	f := setupOrderHandler(t)

	rec := doJSON(f.admin, http.MethodGet, "/api/order/feed", "")

	assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
}
