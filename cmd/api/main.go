package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/schilling3003/shelflife-sales-app/internal/handler"
	"github.com/schilling3003/shelflife-sales-app/internal/middleware"
	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/internal/repository"
	"github.com/schilling3003/shelflife-sales-app/internal/service"
	"github.com/schilling3003/shelflife-sales-app/internal/ws"
	"github.com/schilling3003/shelflife-sales-app/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.SalesCommitment{}, &model.User{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	commitmentRepo := repository.NewCommitmentRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo)
	commitmentService := service.NewCommitmentService(productRepo, commitmentRepo, db, wsHub)
	authService := service.NewAuthService(userRepo)
	adminService := service.NewAdminService(productRepo, userRepo)

	dashHandler := handler.NewDashboardHandler(catalogService)
	commitmentHandler := handler.NewCommitmentHandler(commitmentService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	adminHandler := handler.NewAdminHandler(adminService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "ShelfLife Sales v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/products", dashHandler.GetProducts)
	protected.Post("/products/:id/commitments", commitmentHandler.CreateCommitment)

	// Sales representatives
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id/commitments", commitmentHandler.GetUserCommitments)

	// Admin utilities
	protected.Post("/admin/seed-data", middleware.RequireAdmin(), adminHandler.SeedData)
	protected.Post("/admin/set-admin", adminHandler.SetAdmin)

	// WebSocket Route
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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
