// Package router wires the API handlers to their routes.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	CartHandler    *handler.CartHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	cartHandler    *handler.CartHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		cartHandler:    params.CartHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Accounts
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/admin", r.userHandler.AdminLogin)

		authed := userGroup.Group("", r.authMiddleware.Authenticate)
		authed.GET("/profile", r.profileHandler.GetProfile)
		authed.PUT("/profile", r.profileHandler.UpdateProfile)
		authed.GET("/address", r.profileHandler.ListAddresses)
		authed.POST("/address", r.profileHandler.UpsertAddress)
		authed.DELETE("/address", r.profileHandler.DeleteAddress)
	}

	// Cart
	cartGroup := api.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.PUT("", r.cartHandler.ReplaceCart)
		cartGroup.POST("/get", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.POST("/update", r.cartHandler.UpdateQuantity)
	}

	// Catalog
	productGroup := api.Group("/product")
	{
		productGroup.GET("/list", r.productHandler.ListProducts)
		productGroup.GET("/sizes", r.productHandler.Sizes)
		productGroup.POST("/single", r.productHandler.GetProduct)

		admin := productGroup.Group("", r.authMiddleware.Authenticate, requireAdmin)
		admin.POST("/add", r.productHandler.AddProduct)
		admin.POST("/update", r.productHandler.UpdateProduct)
		admin.POST("/remove", r.productHandler.RemoveProduct)
	}

	// Orders
	orderGroup := api.Group("/order", r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/place", r.orderHandler.PlaceOrder)
		orderGroup.POST("/stripe", r.orderHandler.PlaceOrderStripe)
		orderGroup.POST("/razorpay", r.orderHandler.PlaceOrderRazorpay)
		orderGroup.POST("/userorders", r.orderHandler.UserOrders)

		admin := orderGroup.Group("", requireAdmin)
		admin.POST("/list", r.orderHandler.ListOrders)
		admin.POST("/status", r.orderHandler.UpdateStatus)
		admin.GET("/analytics", r.orderHandler.Analytics)
		admin.GET("/export", r.orderHandler.Export)
		admin.GET("/feed", r.orderHandler.Feed)

		// Static routes above take precedence over these.
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.QRCode)
		orderGroup.GET("/:id/timeline", r.orderHandler.Timeline)
	}
}
