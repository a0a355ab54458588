package main

import (
	"net/http"
	"os"
	"strconv"

	"restaurant-ordering/config"
	"restaurant-ordering/handlers"
	"restaurant-ordering/logging"
	"restaurant-ordering/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	h := handlers.New(db, cfg.JWTSecret)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for browser clients
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
			"status":  "healthy",
			"service": "Restaurant Ordering API",
		})
	})

	routes.SetupRoutes(r, h, cfg.JWTSecret)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
