package main

import (
	"context"
	"log"
	"os"
	"time"

	"dealspace-backend/internal/api/routes"
	"dealspace-backend/internal/config"
	"dealspace-backend/internal/database"
	"dealspace-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "dealspace-backend/docs" // This is needed for swag
)

//	@title			DealSpace CRM API
//	@version		1.0
//	@description	Backend API for the DealSpace real estate CRM: people, pipeline stages, lead routing, groups, ponds and users.

//	@contact.name	API Support
//	@contact.email	support@dealspace.example

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Redis is optional; without it revoked tokens live in process memory
	var redisClient redis.Cmdable
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		redisClient = client
	} else {
		logrus.Warn("REDIS_ADDR not set, token revocations are kept in memory")
	}

	// Initialize file storage
	store, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, redisClient, store)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.WithField("storage", cfg.StorageDriver).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
