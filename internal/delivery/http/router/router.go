// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	WebhookHandler  *handler.WebhookHandler
	StockHandler    *handler.StockHandler
	ContactHandler  *handler.ContactHandler
	CartHandler     *handler.CartHandler
	CatalogHandler  *handler.CatalogHandler
	MenuHandler     *handler.MenuHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	stockHandler    *handler.StockHandler
	contactHandler  *handler.ContactHandler
	cartHandler     *handler.CartHandler
	catalogHandler  *handler.CatalogHandler
	menuHandler     *handler.MenuHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		webhookHandler:  params.WebhookHandler,
		stockHandler:    params.StockHandler,
		contactHandler:  params.ContactHandler,
		cartHandler:     params.CartHandler,
		catalogHandler:  params.CatalogHandler,
		menuHandler:     params.MenuHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Checkout and fulfillment
		api.POST("/create-checkout-session", r.checkoutHandler.CreateSession)
		api.POST("/webhook/stripe", r.webhookHandler.HandleStripeEvent)
		api.POST("/update-stock", r.stockHandler.UpdateStock)

		// Contact form
		api.POST("/contact", r.contactHandler.SubmitInquiry)

		// Cart
		api.GET("/cart", r.cartHandler.GetCart)
		api.POST("/cart/items", r.cartHandler.AddItem)
		api.PUT("/cart/items", r.cartHandler.UpdateItem)
		api.DELETE("/cart/items", r.cartHandler.RemoveItem)
		api.DELETE("/cart", r.cartHandler.ClearCart)

		// Catalog
		api.GET("/products", r.catalogHandler.ListProducts)
		api.GET("/products/:id", r.catalogHandler.GetProduct)
		api.GET("/categories", r.catalogHandler.ListCategories)

		// Navigation
		api.GET("/menu", r.menuHandler.GetMenu)
	}
}
