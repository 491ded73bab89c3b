package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invenflow/invenflow-api/internal/api/handler"
	"github.com/invenflow/invenflow-api/internal/api/middleware"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo is nil when the
// memory store driver is active.
type Dependencies struct {
	Auth      ports.AuthService
	Views     ports.ViewService
	Products  ports.ProductService
	Orders    ports.OrderService
	Inventory ports.InventoryService
	Suppliers ports.SupplierService
	Users     ports.UserService
	Cart      ports.CartService
	Reviews   ports.ReviewService
	Dashboard ports.DashboardService

	Registry *domain.Registry
	Redis    *redis.Client
	Mongo    *mongo.Database
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("invenflow"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	viewHandler := handler.NewViewHandler(deps.Views)
	productHandler := handler.NewProductHandler(deps.Products)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	inventoryHandler := handler.NewInventoryHandler(deps.Inventory)
	supplierHandler := handler.NewSupplierHandler(deps.Suppliers)
	userHandler := handler.NewUserHandler(deps.Users)
	cartHandler := handler.NewCartHandler(deps.Cart)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	// --- Health and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Versioned API; every route resolves the session first ---
	v1 := e.Group("/v1", middleware.Session(deps.Auth))

	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/session", authHandler.Session)

	v1.GET("/views/navigation", viewHandler.Navigation)
	v1.GET("/views/pages/:page", viewHandler.ComposePage)

	gate := func(pageKey string) echo.MiddlewareFunc {
		return middleware.Gate(deps.Registry, pageKey)
	}

	v1.GET("/dashboard", dashboardHandler.Get, gate(domain.PageDashboard))

	products := v1.Group("/products", gate(domain.PageProducts))
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)
	products.GET("/:id/reviews", reviewHandler.ListByProduct)

	orders := v1.Group("/orders", gate(domain.PageOrders))
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	inventory := v1.Group("/inventory", gate(domain.PageInventory))
	inventory.GET("", inventoryHandler.List)
	inventory.POST("/adjustments", inventoryHandler.Adjust)
	inventory.GET("/movements", inventoryHandler.Movements, gate(domain.PageStockMovements))

	suppliers := v1.Group("/suppliers", gate(domain.PageSuppliers))
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	users := v1.Group("/users", gate(domain.PageUsers))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	cart := v1.Group("/cart", gate(domain.PageCart))
	cart.GET("", cartHandler.Get)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:product_id", cartHandler.UpdateItem)
	cart.DELETE("/items/:product_id", cartHandler.RemoveItem)

	v1.POST("/checkout", cartHandler.Checkout, gate(domain.PageCheckout))

	// Review creation is a customer page; moderation is an administrator
	// action enforced in the service.
	v1.POST("/reviews", reviewHandler.Create, gate(domain.PageReviews))
	v1.DELETE("/reviews/:id", reviewHandler.Delete)

	return e
}
