package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	OrderEventUC usecase.OrderEventUsecase
	Feed         http.Handler `name:"orderFeed"`
	Logger       *slog.Logger
}

// OrderHandler serves checkout, order history and the admin order views.
type OrderHandler struct {
	orderUC      usecase.OrderUsecase
	orderEventUC usecase.OrderEventUsecase
	feed         http.Handler
	logger       *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:      params.OrderUC,
		orderEventUC: params.OrderEventUC,
		feed:         params.Feed,
		logger:       params.Logger,
	}
}

// OrderItemRequest is one checkout line. Older clients send the product id as "_id".
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	LegacyID  string `json:"_id"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

func (r OrderItemRequest) productID() string {
	if r.ProductID != "" {
		return r.ProductID
	}

	return r.LegacyID
}

// PlaceOrderRequest is the checkout body. The user comes from the session token.
type PlaceOrderRequest struct {
	Items         []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	Amount        decimal.Decimal        `json:"amount"`
	Address       entity.ShippingAddress `json:"address"`
	PaymentMethod string                 `json:"paymentMethod"`
}

// UpdateStatusRequest moves an order along the fulfilment progression.
type UpdateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// OrderFilterRequest holds the admin filters, read from the JSON body of
// POST /list and from the query string of the GET endpoints.
type OrderFilterRequest struct {
	UserID  string `json:"userId" query:"userId"`
	Status  string `json:"status" query:"status"`
	Payment string `json:"payment" query:"payment" validate:"omitempty,oneof=paid pending"`
	From    string `json:"from" query:"from"`
	To      string `json:"to" query:"to"`
	Search  string `json:"search" query:"search"`
	Limit   int    `json:"limit" query:"limit" validate:"min=0,max=500"`
	Offset  int    `json:"offset" query:"offset" validate:"min=0"`
}

func (r *OrderFilterRequest) toFilter() (entity.OrderFilter, error) {
	filter := entity.OrderFilter{
		Search: r.Search,
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	var err error
	if filter.UserID, err = parseOptionalID(r.UserID, "userId"); err != nil {
		return filter, err
	}

	if r.Status != "" {
		status, ok := entity.ParseOrderStatus(r.Status)
		if !ok {
			return filter, domainerrors.ErrValidationFailed.WithDetails("unknown status " + strconv.Quote(r.Status))
		}
		filter.Status = status
	}

	if r.Payment != "" {
		paid := r.Payment == "paid"
		filter.Paid = &paid
	}

	if filter.From, err = parseOptionalTime(r.From, "from", false); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalTime(r.To, "to", true); err != nil {
		return filter, err
	}

	return filter, nil
}

// PlaceOrder checks out with the payment method from the body.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	return h.placeOrder(c, "")
}

// PlaceOrderStripe checks out through the simulated Stripe gateway.
func (h *OrderHandler) PlaceOrderStripe(c echo.Context) error {
	return h.placeOrder(c, entity.PaymentMethodStripe)
}

// PlaceOrderRazorpay checks out through the simulated Razorpay gateway.
func (h *OrderHandler) PlaceOrderRazorpay(c echo.Context) error {
	return h.placeOrder(c, entity.PaymentMethodRazorpay)
}

func (h *OrderHandler) placeOrder(c echo.Context, forced entity.PaymentMethod) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for i, item := range req.Items {
		productID, err := parseID(item.productID(), "items["+strconv.Itoa(i)+"].productId")
		if err != nil {
			return err
		}
		items = append(items, usecase.OrderItemInput{
			ProductID: productID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	method := req.PaymentMethod
	if forced != "" {
		method = forced.String()
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		Items:         items,
		Address:       req.Address,
		Amount:        req.Amount,
		PaymentMethod: method,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// UserOrders lists the caller's orders, newest first.
func (h *OrderHandler) UserOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetOrder returns one order to its owner or an admin.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, orderID, err := h.orderAccess(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, deliverycontext.IsAdmin(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// ListOrders returns one filtered page of all orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	orders, total, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &OrderListResponse{
		Orders: toOrderResponses(orders),
		Total:  total,
	}, "")
}

// UpdateStatus moves an order forward. Repeating the current status succeeds without a change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	orderID, err := parseID(req.OrderID, "orderId")
	if err != nil {
		return err
	}

	out, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Status Updated"
	if !out.Changed {
		message = "Status unchanged"
	}

	return response.Success(c, http.StatusOK, toOrderResponse(out.Order), message)
}

// Analytics summarizes the filtered orders.
func (h *OrderHandler) Analytics(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	analytics, err := h.orderUC.Analytics(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAnalyticsResponse(analytics), "")
}

// Export downloads the filtered orders as a spreadsheet.
func (h *OrderHandler) Export(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}

	// Rendered to memory first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	out, err := h.orderUC.ExportOrders(c.Request().Context(), filter, &buf)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(out.Filename))
	c.Response().Header().Set("X-Order-Count", strconv.Itoa(out.Count))

	return c.Blob(http.StatusOK, out.ContentType, buf.Bytes())
}

// Feed upgrades to the live order websocket.
func (h *OrderHandler) Feed(c echo.Context) error {
	h.feed.ServeHTTP(c.Response(), c.Request())

	return nil
}

// QRCode renders the tracking QR code of an order as PNG.
func (h *OrderHandler) QRCode(c echo.Context) error {
	userID, orderID, err := h.orderAccess(c)
	if err != nil {
		return err
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), userID, deliverycontext.IsAdmin(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Timeline lists the recorded events of an order, oldest first.
func (h *OrderHandler) Timeline(c echo.Context) error {
	userID, orderID, err := h.orderAccess(c)
	if err != nil {
		return err
	}

	events, err := h.orderEventUC.Timeline(c.Request().Context(), userID, deliverycontext.IsAdmin(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderEventResponses(events), "")
}

func (h *OrderHandler) orderAccess(c echo.Context) (userID, orderID uuid.UUID, err error) {
	if userID, err = currentUser(c); err != nil {
		return userID, orderID, err
	}

	orderID, err = parseID(c.Param("id"), "id")

	return userID, orderID, err
}

func (h *OrderHandler) bindFilter(c echo.Context) (entity.OrderFilter, error) {
	var req OrderFilterRequest
	if err := c.Bind(&req); err != nil {
		return entity.OrderFilter{}, domainerrors.ErrValidationFailed.WithDetails("invalid order filter")
	}

	if err := c.Validate(&req); err != nil {
		return entity.OrderFilter{}, errors.WithStack(err)
	}

	return req.toFilter()
}
