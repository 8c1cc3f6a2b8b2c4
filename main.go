package main

import (
	"net/http"
	"os"

	"restaurant-pos-api/config"
	"restaurant-pos-api/database"
	"restaurant-pos-api/events"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/logger"
	"restaurant-pos-api/mailer"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; deployed environments set real env vars
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(cfg.Env)
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}
	log.Info("Starting restaurant-pos-api",
		zap.String("environment", cfg.Env),
		zap.String("port", cfg.Port))

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database connected and migrated")

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.OrderExchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		publisher = amqpPub
		log.Info("Order event publisher connected", zap.String("exchange", cfg.OrderExchange))
	}
	defer publisher.Close()

	mail := mailer.NewSMTPSender(cfg.SMTP)
	auth := middleware.NewAuth([]byte(cfg.JWTSecret))

	if mode := os.Getenv("GIN_MODE"); mode == "" && cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Prometheus())

	// CORS for the React frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "restaurant-pos-api"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r, routes.Deps{
		Auth:       auth,
		AuthH:      handlers.NewAuthHandler(db, auth, mail, log),
		Orders:     handlers.NewOrderHandler(db, publisher, log),
		Tables:     handlers.NewTableHandler(db),
		Payments:   handlers.NewPaymentHandler(db, mail, log),
		Products:   handlers.NewProductHandler(db),
		Categories: handlers.NewCategoryHandler(db),
		Customers:  handlers.NewCustomerHandler(db),
		Dashboard:  handlers.NewDashboardHandler(db),
	})

	log.Info("Server listening", zap.String("addr", ":"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
