package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/config"
	"github.com/studiopos/salon-api/internal/infrastructure/database"
	"github.com/studiopos/salon-api/internal/infrastructure/repository"
	"github.com/studiopos/salon-api/internal/presentation/http/handler"
	"github.com/studiopos/salon-api/internal/presentation/http/routes"
	"github.com/studiopos/salon-api/pkg/printer"
	"github.com/studiopos/salon-api/pkg/utils"
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
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	credentialService := service.NewCredentialService(credentialRepo)
	authService := service.NewAuthService(userRepo, credentialService, jwtManager)
	productService := service.NewProductService(productRepo)
	clientService := service.NewClientService(clientRepo)
	staffService := service.NewStaffService(staffRepo)
	ledgerService := service.NewLedgerService(staffRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, clientRepo, staffRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:       cfg.Printer.Type,
		DevicePath: cfg.Printer.USBPath,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(saleRepo, settingsRepo, thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Client:   handler.NewClientHandler(clientService),
		Staff:    handler.NewStaffHandler(staffService, ledgerService, credentialService),
		Sale:     handler.NewSaleHandler(saleService, credentialService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Settings: handler.NewSettingsHandler(settingsService, credentialService),
		Receipt:  handler.NewReceiptHandler(receiptService),
	}

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
		os.Exit(1)
	}
}
