package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suplefit/backoffice-api/internal/config"
	domainRepo "github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/internal/presentation/http/handler"
	"github.com/suplefit/backoffice-api/internal/presentation/http/middleware"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Quotation *handler.QuotationHandler
	Fiscal    *handler.FiscalHandler
	Printer   *handler.PrinterHandler
	Template  *handler.TemplateHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	settings := protected.Group("/settings")
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.Stats)
		dashboard.GET("/low-stock", h.Dashboard.LowStockAlerts)
	}

	// Products
	registerProductRoutes(protected, h)

	// Categories
	registerCategoryRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Quotations
	registerQuotationRoutes(protected, h)

	// Fiscal documents
	registerFiscalRoutes(protected, h)

	// Message templates
	registerTemplateRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles and permissions (Admin)
	registerRoleRoutes(protected, h)

	// Printer and receipts
	registerPrinterRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequirePermission("manage-products"))
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:slug", h.Product.Get)
		products.PUT("/:slug", h.Product.Update)
		products.DELETE("/:slug", h.Product.Delete)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	categories.Use(middleware.RequirePermission("manage-categories"))
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/convert", h.Quotation.Convert)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerFiscalRoutes(protected *gin.RouterGroup, h *Handlers) {
	fiscal := protected.Group("/fiscal-invoices")
	fiscal.Use(middleware.RequirePermission("manage-fiscal"))
	{
		fiscal.GET("", h.Fiscal.List)
		fiscal.POST("/import", h.Fiscal.Import)
		fiscal.GET("/:id", h.Fiscal.Get)
		fiscal.DELETE("/:id", h.Fiscal.Delete)
	}
}

func registerTemplateRoutes(protected *gin.RouterGroup, h *Handlers) {
	templates := protected.Group("/templates")
	templates.Use(middleware.RequirePermission("manage-customers"))
	{
		templates.GET("", h.Template.List)
		templates.POST("", h.Template.Create)
		templates.GET("/:id", h.Template.Get)
		templates.PUT("/:id", h.Template.Update)
		templates.DELETE("/:id", h.Template.Delete)
		templates.POST("/:id/render", h.Template.Render)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.PUT("/:id/active", h.User.SetActive)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	printerGroup.Use(middleware.RequirePermission("print-receipts"))
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/orders/:id", h.Printer.PrintOrder)
		printerGroup.POST("/quotations/:id", h.Printer.PrintQuotation)
	}

	receipts := protected.Group("/receipts")
	receipts.Use(middleware.RequirePermission("print-receipts"))
	{
		receipts.GET("/orders/:id/html", h.Printer.OrderReceiptHTML)
		receipts.GET("/orders/:id/pdf", h.Printer.OrderReceiptPDF)
		receipts.GET("/quotations/:id/html", h.Printer.QuotationReceiptHTML)
		receipts.GET("/quotations/:id/pdf", h.Printer.QuotationReceiptPDF)
	}
}
