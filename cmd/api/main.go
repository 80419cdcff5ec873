package main

import (
	"fmt"
	"net/http"
	"os"

	"kharcha/internal/config"
	"kharcha/internal/database"
	"kharcha/internal/handlers"
	"kharcha/internal/logger"
	"kharcha/internal/middleware"
	"kharcha/internal/receipt"
	"kharcha/internal/services"
	"kharcha/internal/store"
	"kharcha/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	expenseStore := store.NewExpenseStore(dbManager.DB())
	expenseService := services.NewExpenseService(expenseStore)
	analyticsService := services.NewAnalyticsService(expenseStore)
	transferService := services.NewTransferService(expenseStore, dbManager.Path(), appConfig.BackupDir)
	receiptService := services.NewReceiptService(&receipt.TesseractExtractor{Bin: appConfig.TesseractBin})

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	transferHandler := handlers.NewTransferHandler(transferService)
	receiptHandler := handlers.NewReceiptHandler(receiptService, appConfig.ReceiptDir)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Categorization
	v1.POST("/categorize", expenseHandler.Categorize)

	// Analytics routes
	analytics := v1.Group("/analytics")
	analytics.GET("/aggregates", analyticsHandler.GetAggregates)
	analytics.GET("/breakdown", analyticsHandler.GetBreakdown)
	analytics.GET("/trend", analyticsHandler.GetTrend)
	analytics.GET("/forecast", analyticsHandler.GetForecast)
	analytics.GET("/insights", analyticsHandler.GetInsights)
	analytics.GET("/recommendations", analyticsHandler.GetRecommendations)
	analytics.GET("/comparison", analyticsHandler.GetComparison)
	analytics.GET("/tiers", analyticsHandler.GetTiers)
	analytics.POST("/anomaly-check", analyticsHandler.CheckAnomaly)

	// Export and import routes
	export := v1.Group("/export")
	export.GET("/csv", transferHandler.ExportCSV)
	export.GET("/excel", transferHandler.ExportExcel)

	importGroup := v1.Group("/import")
	importGroup.POST("/csv", transferHandler.ImportCSV)
	importGroup.POST("/excel", transferHandler.ImportExcel)

	// Backup and restore
	v1.POST("/backup", transferHandler.Backup)
	v1.POST("/restore", transferHandler.Restore)

	// Receipt capture
	v1.POST("/receipts", receiptHandler.ProcessReceipt)

	log.Infof("Starting Kharcha backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
