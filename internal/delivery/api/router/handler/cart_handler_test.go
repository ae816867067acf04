package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T) (*mockusecase.MockCartUsecase, uuid.UUID, *echo.Echo) {
	t.Helper()

	cartUC := mockusecase.NewMockCartUsecase(t)
	userID := uuid.New()
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/cart", as(userID, entity.RoleUser))
	g.GET("", h.GetCart)
	g.PUT("", h.ReplaceCart)
	g.POST("/add", h.AddItem)
	g.POST("/update", h.UpdateQuantity)

	return cartUC, userID, e
}

func TestCartHandler_AddItem(t *testing.T) {
	cartUC, userID, e := setupCartHandler(t)
	productID := uuid.New()

	cart := entity.Cart{}
	cart.Set(productID, "42.0", 1)
	cartUC.EXPECT().AddItem(mock.Anything, userID, productID, "42").Return(cart, nil)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", `{"itemId":"`+productID.String()+`","size":"42"}`)

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[CartResponse](t, rec)
	assert.Equal(t, 1, out[productID.String()]["42.0"])
}

func TestCartHandler_AddItem_UnknownSize(t *testing.T) {
	_, _, e := setupCartHandler(t)

	rec := doJSON(e, http.MethodPost, "/api/cart/add", `{"itemId":"`+uuid.NewString()+`","size":"XXL"}`)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "size is not a known size")
}

func TestCartHandler_UpdateQuantity_ZeroRemoves(t *testing.T) {
	cartUC, userID, e := setupCartHandler(t)
	productID := uuid.New()

	cartUC.EXPECT().UpdateQuantity(mock.Anything, userID, productID, "42", 0).Return(entity.Cart{}, nil)

	rec := doJSON(e, http.MethodPost, "/api/cart/update", `{"itemId":"`+productID.String()+`","size":"42","quantity":0}`)

	requireStatus(t, rec, http.StatusOK)
	assert.Empty(t, decodeData[CartResponse](t, rec))
}

func TestCartHandler_UpdateQuantity_Negative(t *testing.T) {
	_, _, e := setupCartHandler(t)

	rec := doJSON(e, http.MethodPost, "/api/cart/update", `{"itemId":"`+uuid.NewString()+`","size":"42","quantity":-1}`)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCartHandler_ReplaceCart(t *testing.T) {
	cartUC, userID, e := setupCartHandler(t)
	productID := uuid.New()

	cartUC.EXPECT().
		ReplaceCart(mock.Anything, userID, []usecase.CartLine{{ProductID: productID, Size: "41", Quantity: 2}}).
		Return(entity.NewCart([]entity.CartItem{{ProductID: productID, Size: "41.0", Quantity: 2}}), nil)

	rec := doJSON(e, http.MethodPut, "/api/cart", `{"cartData":{"`+productID.String()+`":{"41":2}}}`)

	requireStatus(t, rec, http.StatusOK)
	out := decodeData[CartResponse](t, rec)
	require.Contains(t, out, productID.String())
	assert.Equal(t, 2, out[productID.String()]["41.0"])
}

func TestCartHandler_ReplaceCart_BadProductKey(t *testing.T) {
	_, _, e := setupCartHandler(t)

	rec := doJSON(e, http.MethodPut, "/api/cart", `{"cartData":{"nope":{"41":2}}}`)

	requireStatus(t, rec, http.StatusBadRequest)
}
