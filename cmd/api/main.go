package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/config"
	"github.com/suplefit/backoffice-api/internal/infrastructure/database"
	"github.com/suplefit/backoffice-api/internal/infrastructure/repository"
	"github.com/suplefit/backoffice-api/internal/presentation/http/handler"
	"github.com/suplefit/backoffice-api/internal/presentation/http/routes"
	"github.com/suplefit/backoffice-api/pkg/oauth"
	"github.com/suplefit/backoffice-api/pkg/printer"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	fiscalInvoiceRepo := repository.NewFiscalInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize Google OAuth service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		AllowedDomain:      cfg.OAuth.AllowedDomain,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, googleService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo)
	quotationService := service.NewQuotationService(quotationRepo, productRepo, customerRepo)
	fiscalService := service.NewFiscalService(fiscalInvoiceRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	templateService := service.NewTemplateService(templateRepo, customerRepo, orderRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, productRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.SerialPort,
		cfg.Printer.BaudRate,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, quotationRepo, settingsRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Customer:  handler.NewCustomerHandler(customerService),
		Order:     handler.NewOrderHandler(orderService),
		Quotation: handler.NewQuotationHandler(quotationService, orderService),
		Fiscal:    handler.NewFiscalHandler(fiscalService),
		Printer:   handler.NewPrinterHandler(printerService),
		Template:  handler.NewTemplateHandler(templateService, settingsService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Purge expired idempotency keys hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
