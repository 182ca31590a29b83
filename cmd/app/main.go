package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"har2jmx/internal/config"
	"har2jmx/internal/handlers"
	"har2jmx/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery()) // Panic recovery
	// Permissive CORS: the endpoint is meant to be called from browser
	// tooling on arbitrary origins. Preflight OPTIONS is answered here.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		MaxAge:          12 * 3600,
	}))
	router.Use(middleware.Logger(logger)) // Request logging

	// Initialize rate limiter
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(cfg, logger)

	// Health check endpoint (no rate limit)
	router.GET("/health", handlers.HealthCheck)

	// API routes
	api := router.Group("/api/v1")
	{
		// Generation (with rate limiting; each call costs a provider request)
		api.POST("/generate", middleware.RateLimitMiddleware(limiter), generateHandler.Generate)
	}

	// Start server
	address := ":" + cfg.Port
	logger.Infof("🚀 Server starting on %s", address)
	if err := router.Run(address); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
