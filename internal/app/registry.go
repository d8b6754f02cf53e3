package app

import (
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/flow"
	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/order"
	"go-storefront-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Deps struct {
	CatalogProvider catalog.Provider
	Redis           *redis.Client
	Publisher       order.Publisher
	Logger          *zap.Logger
}

func registerModules(router *gin.Engine, deps Deps) {
	sessions := session.NewManager()

	// --- Services ---
	catalogService := catalog.NewService(deps.CatalogProvider, deps.Logger)
	cartService := cart.NewService(catalogService)
	orderService := order.NewService(order.Deps{
		CatalogSvc: catalogService,
		Validator:  checkout.NewValidator(),
		Publisher:  deps.Publisher,
		Logger:     deps.Logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService, deps.Logger)
	cartHandler := cart.NewHandler(cartService, deps.Logger)
	flowHandler := flow.NewHandler(deps.Logger)
	orderHandler := order.NewHandler(orderService, deps.Logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.Session(sessions))
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		flow.RegisterRoutes(api, flowHandler)
		order.RegisterRoutes(api, orderHandler, deps.Redis)
	}
}
