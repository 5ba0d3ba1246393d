package main

import (
	"log"
	"net/http"
	"time"

	"foodcourt/internal/config"
	"foodcourt/internal/database"
	"foodcourt/internal/handlers"
	"foodcourt/internal/middleware"
	"foodcourt/internal/migrations"
	"foodcourt/internal/redis"
	"foodcourt/internal/repository"
	"foodcourt/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis (cart store)
	cartStore, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CartTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLDays)*24*time.Hour)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo)
	cartService := services.NewCartService(cartStore, menuRepo, orderService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	cartHandler := handlers.NewCartHandler(cartService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		menu := api.Group("/menu")
		{
			menu.GET("", menuHandler.List)
			menu.GET("/:id", menuHandler.Get)

			admin := menu.Group("", middleware.AuthRequired(authService), middleware.AdminOnly())
			{
				admin.POST("", menuHandler.Create)
				admin.PUT("/:id", menuHandler.Update)
				admin.DELETE("/:id", menuHandler.Delete)
				admin.PATCH("/:id/availability", menuHandler.ToggleAvailability)
			}
		}

		orders := api.Group("/orders", middleware.AuthRequired(authService))
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		cart := api.Group("/cart", middleware.AuthRequired(authService))
		{
			cart.GET("", cartHandler.Get)
			cart.DELETE("", cartHandler.Clear)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.SetQuantity)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
