package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/api/handler"
	"github.com/esghir/sales-frontend/internal/api/middleware"
	"github.com/esghir/sales-frontend/internal/core/ports"
	"github.com/esghir/sales-frontend/internal/core/service"
	"github.com/esghir/sales-frontend/internal/infrastructure/backend"
	"github.com/esghir/sales-frontend/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. The
// backend client and session repository come in from main; everything in
// the service layer is wired here.
func NewRouter(cfg *config.Config, client *backend.Client, sessionRepo ports.SessionRepository, readiness map[string]handler.Pinger, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Session.CookieName)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Services ---
	sessionService := service.NewSessionService(client, client, sessionRepo, cfg.Session.TTL, log)
	cartService := service.NewCartService(sessionService, client, log)
	checkoutService := service.NewCheckoutService(client, client, sessionRepo, log)
	catalogService := service.NewCatalogService(client, log)
	orderService := service.NewOrderService(client, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(sessionService, cfg.Session.CookieName, cfg.Session.CookieSecure)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(catalogService, orderService)

	sessionMiddleware := middleware.Session(sessionService, cfg.Session.CookieName)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Catalog (public) ---
	e.GET("/products", catalogHandler.List)
	e.GET("/products/:id", catalogHandler.Get)

	// --- Cart / checkout / orders (session required) ---
	shop := e.Group("", sessionMiddleware)
	shop.GET("/cart", cartHandler.Get)
	shop.POST("/cart/items", cartHandler.AddItem)
	shop.PUT("/cart/items/:productId", cartHandler.UpdateItem)
	shop.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	shop.POST("/checkout", checkoutHandler.Submit)
	shop.GET("/orders", orderHandler.List)
	shop.GET("/orders/:id", orderHandler.Get)
	shop.POST("/orders/:id/cancel", orderHandler.Cancel)

	// --- Admin panel ---
	admin := e.Group("/admin", sessionMiddleware, middleware.Admin())
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(readiness)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
