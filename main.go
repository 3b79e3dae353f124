package main

import (
	"log"
	"net/http"
	"os"

	"github.com/AtharvMirajkar/delivery-management-system/config"
	"github.com/AtharvMirajkar/delivery-management-system/logger"
	"github.com/AtharvMirajkar/delivery-management-system/middleware"
	"github.com/AtharvMirajkar/delivery-management-system/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development
	config.LoadEnv()

	if err := logger.InitLogger(
		config.GetEnv("LOG_LEVEL", "info"),
		config.GetEnv("APP_ENV", "development"),
	); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database and optional first admin
	config.InitDB()
	if err := config.SeedAdmin(); err != nil {
		logger.GetLogger().Fatal("failed to seed admin", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.GetEnv("PORT", "8080")
	logger.GetLogger().Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.GetLogger().Fatal("failed to start server", zap.Error(err))
	}
}
