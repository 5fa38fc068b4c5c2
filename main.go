package main

import (
	"log"
	"os"

	"github.com/Roland735/shopping-organizer/handlers"
	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/middleware"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := mongodb.Init(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger)
	router.Use(middleware.CorsMiddleware)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	h := handlers.New(mongodb.NewStore())

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.HandleSignup)
		auth.POST("/login", h.HandleLogin)
	}

	api := router.Group("")
	api.Use(middleware.AuthMiddleware)
	{
		api.GET("/user", h.HandleGetProfile)
		api.PATCH("/user", h.HandleUpdateProfile)

		api.GET("/lists", h.HandleGetLists)
		api.POST("/lists", h.HandleCreateList)
		api.GET("/lists/:id", h.HandleGetList)
		api.PATCH("/lists/:id", h.HandleUpdateList)
		api.DELETE("/lists/:id", h.HandleDeleteList)

		// The trailing owner segment is kept for client compatibility; the
		// ownership filter always comes from the session.
		api.POST("/lists/:id/items/:ownerUserId", h.HandleAddItem)
		api.PATCH("/lists/:id/items/:itemId/:ownerUserId", h.HandleUpdateItem)
		api.DELETE("/lists/:id/items/:itemId/:ownerUserId", h.HandleRemoveItem)

		api.GET("/expenses", h.HandleGetExpenses)
		api.POST("/expenses", h.HandleCreateExpense)
		api.PUT("/expenses/:id", h.HandleUpdateExpense)
		api.DELETE("/expenses/:id", h.HandleDeleteExpense)

		api.GET("/reminders", h.HandleGetReminders)
		api.POST("/reminders", h.HandleCreateReminder)
		api.PUT("/reminders/:id", h.HandleUpdateReminder)
		api.DELETE("/reminders/:id", h.HandleDeleteReminder)

		api.GET("/dashboard", h.HandleGetDashboard)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
