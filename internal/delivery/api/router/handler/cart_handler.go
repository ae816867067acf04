package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's server-side cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest adds one unit of a product size.
type AddToCartRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size" validate:"required,size"`
}

// UpdateCartRequest sets the quantity of a product size; 0 removes it.
type UpdateCartRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Size     string `json:"size" validate:"required,size"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// ReplaceCartRequest mirrors the whole client cart.
type ReplaceCartRequest struct {
	CartData map[string]map[string]int `json:"cartData"`
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "")
}

// AddItem increments a cart entry by one.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := parseID(req.ItemID, "itemId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, productID, req.Size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Added to cart")
}

// UpdateQuantity sets a cart entry.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := parseID(req.ItemID, "itemId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, productID, req.Size, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Cart updated")
}

// ReplaceCart stores the client's whole cart.
func (h *CartHandler) ReplaceCart(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ReplaceCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	lines := make([]usecase.CartLine, 0, len(req.CartData))
	for rawID, sizes := range req.CartData {
		productID, err := parseID(rawID, "cartData key")
		if err != nil {
			return err
		}
		for size, qty := range sizes {
			lines = append(lines, usecase.CartLine{ProductID: productID, Size: size, Quantity: qty})
		}
	}

	cart, err := h.cartUC.ReplaceCart(c.Request().Context(), userID, lines)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Cart updated")
}
