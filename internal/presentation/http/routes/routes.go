package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiopos/salon-api/internal/config"
	domainRepo "github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/internal/presentation/http/handler"
	"github.com/studiopos/salon-api/internal/presentation/http/middleware"
	"github.com/studiopos/salon-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Client   *handler.ClientHandler
	Staff    *handler.StaffHandler
	Sale     *handler.SaleHandler
	Expense  *handler.ExpenseHandler
	Settings *handler.SettingsHandler
	Receipt  *handler.ReceiptHandler
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
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewAccountRateLimiter(middleware.RateLimiterConfig{
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

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Account
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)
	protected.PUT("/settings/admin-password", middleware.RequireRole("admin"), h.Settings.ChangeAdminPassword)

	registerProductRoutes(protected, h)
	registerClientRoutes(protected, h)
	registerStaffRoutes(protected, h)
	registerSaleRoutes(protected, h, deps)
	registerExpenseRoutes(protected, h)
	registerReceiptRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.ListProducts)
		products.POST("", h.Product.CreateProduct)
		products.GET("/:id", h.Product.GetProduct)
		products.PUT("/:id", h.Product.UpdateProduct)
		products.DELETE("/:id", h.Product.DeleteProduct)
	}
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.ListClients)
		clients.POST("", h.Client.CreateClient)
		clients.GET("/:id", h.Client.GetClient)
		clients.PUT("/:id", h.Client.UpdateClient)
		clients.DELETE("/:id", h.Client.DeleteClient)
		clients.GET("/:id/purchases", h.Client.ListPurchases)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	{
		staff.GET("", h.Staff.ListStaff)
		staff.POST("", h.Staff.CreateStaff)
		staff.GET("/balances", h.Staff.ListBalances)
		staff.GET("/:id", h.Staff.GetStaff)
		staff.PUT("/:id", h.Staff.UpdateStaff)
		staff.DELETE("/:id", h.Staff.DeleteStaff)

		// Commission ledger
		staff.GET("/:id/balance", h.Staff.GetBalance)
		staff.POST("/:id/discounts", h.Staff.AddDiscount)
		staff.POST("/:id/discounts/:discountId/cancel", h.Staff.CancelDiscount)
		staff.POST("/:id/pay-commission", h.Staff.PayCommission)

		// Destructive, admin password gated
		staff.POST("/:id/clear-history", h.Staff.ClearHistory)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.ListSales)
		// Sale recording uses idempotency middleware so a replayed
		// submission cannot consume a second invoice number
		sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.RecordSale)
		sales.GET("/:id", h.Sale.GetSale)
		sales.POST("/:id/cancel", h.Sale.CancelSale)

		// Destructive, admin password gated
		sales.POST("/:id/delete", h.Sale.DeleteSale)
		sales.POST("/delete-all", h.Sale.DeleteAllSales)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.ListExpenses)
		expenses.POST("", h.Expense.CreateExpense)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("/:id", h.Receipt.GetReceipt)
		receipts.GET("/:id/html", h.Receipt.GetReceiptHTML)
		receipts.POST("/:id/print", h.Receipt.PrintReceipt)
	}

	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Receipt.GetPrinterStatus)
		printerGroup.POST("/test", h.Receipt.TestPrint)
	}
}
