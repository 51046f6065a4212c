// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"supermall/internal/delivery/api/middleware"
	"supermall/internal/delivery/api/router/handler"
	"supermall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ShopHandler    *handler.ShopHandler
	ProductHandler *handler.ProductHandler
	OfferHandler   *handler.OfferHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	shopHandler    *handler.ShopHandler
	productHandler *handler.ProductHandler
	offerHandler   *handler.OfferHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		shopHandler:    params.ShopHandler,
		productHandler: params.ProductHandler,
		offerHandler:   params.OfferHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	e.GET("/media/*", r.mediaHandler.GetMedia)

	requireSession := r.authMiddleware.RequireSession
	optionalSession := r.authMiddleware.OptionalSession

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, requireSession)
	}

	apiV1 := e.Group("/api/v1")

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("", r.shopHandler.ListShops, optionalSession)
		shopsGroup.GET("/fields/:field", r.shopHandler.ListUniqueShopFields, optionalSession)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.GET("/:id/qr", r.shopHandler.ShopQRCode)
		shopsGroup.POST("", r.shopHandler.CreateShop, requireSession)
		shopsGroup.PATCH("/:id", r.shopHandler.UpdateShop, requireSession)
		shopsGroup.DELETE("/:id", r.shopHandler.DeleteShop, requireSession)

		// Products and offers nested under their shop
		shopsGroup.GET("/:id/products", r.productHandler.ListProducts)
		shopsGroup.POST("/:id/products", r.productHandler.CreateProduct, requireSession)
		shopsGroup.GET("/:id/offers", r.offerHandler.ListOffers)
		shopsGroup.POST("/:id/offers", r.offerHandler.CreateOffer, requireSession)
	}

	productsGroup := apiV1.Group("/products", requireSession)
	{
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("/:id/products", r.offerHandler.GetOfferProducts)
		offersGroup.PUT("/:id/products", r.offerHandler.LinkProducts, requireSession)
		offersGroup.DELETE("/:id", r.offerHandler.DeleteOffer, requireSession)
	}
}
