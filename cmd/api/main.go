package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-resto-backoffice/internal/config"
	"go-resto-backoffice/internal/handler"
	"go-resto-backoffice/internal/middleware"
	"go-resto-backoffice/internal/service"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Setup Durable Storage
	db := database.Connect(cfg.DatabaseURL, cfg.SQLitePath)

	// 3. Load Store (seeds defaults on first run or corrupt blobs)
	st := store.New(db)
	if err := st.Load(); err != nil {
		log.Fatal("Failed to load state: ", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	catalogService := service.NewCatalogService(st)
	invService := service.NewInventoryService(st, wsHub)
	expenseService := service.NewExpenseService(st)
	salesService := service.NewSalesService(st, wsHub)
	dashService := service.NewDashboardService(st)
	insightService := service.NewInsightService(st, cfg.GeminiAPIKey, cfg.GeminiModel)
	authService := service.NewAuthService(st)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	invHandler := handler.NewInventoryHandler(invService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	salesHandler := handler.NewSalesHandler(salesService)
	dashHandler := handler.NewDashboardHandler(dashService, insightService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Resto Back Office v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Demo access gate (hardcoded PIN + one-time code)
	auth := api.Group("/auth")
	auth.Post("/pin", authHandler.RequestCode)
	auth.Post("/verify", authHandler.Verify)
	auth.Post("/logout", authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(st))

	// Menu Catalog
	protected.Get("/menu", catalogHandler.GetMenu)
	protected.Get("/menu/categories", catalogHandler.GetCategories)
	protected.Post("/menu", catalogHandler.AddMenuItem)
	protected.Delete("/menu/:id", catalogHandler.DeleteMenuItem)

	// Inventory
	protected.Get("/inventory", invHandler.GetInventory)
	protected.Post("/inventory", invHandler.AddInventoryItem)
	protected.Patch("/inventory/:id/quantity", invHandler.AdjustQuantity)

	// Expenses
	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Get("/expenses/categories", expenseHandler.GetCategories)
	protected.Post("/expenses", expenseHandler.AddExpense)

	// Sales screen: in-progress order + committed history
	protected.Get("/sales", salesHandler.GetSales)
	protected.Get("/order", salesHandler.GetOrder)
	protected.Post("/order/items", salesHandler.AddToOrder)
	protected.Patch("/order/items/:menuItemId", salesHandler.AdjustOrderItem)
	protected.Delete("/order", salesHandler.ClearOrder)
	protected.Post("/order/checkout", salesHandler.Checkout)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/revenue-trend", dashHandler.GetRevenueTrend)
	protected.Get("/dashboard/category-breakdown", dashHandler.GetCategoryBreakdown)
	protected.Get("/dashboard/top-items", dashHandler.GetTopSellingItems)
	protected.Post("/dashboard/insight", dashHandler.GenerateInsight)

	// WebSocket Route (live dashboard events)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
