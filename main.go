package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ordersys/internal/config"
	"ordersys/internal/handlers"
	applogger "ordersys/internal/logger"
	"ordersys/internal/models"
	"ordersys/internal/services"
	"ordersys/internal/storage"
	"ordersys/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := applogger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// --- Storage ---
	repo, closeStorage, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("Error closing storage", zap.Error(err))
		}
	}()

	// --- Order events ---
	// Publishing is optional: without RABBITMQ_URL the service runs without events.
	var publisher services.OrderEventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeOrderEvents(logOrderEvent(logger)); err != nil {
			logger.Error("Failed to start RabbitMQ consumer", zap.Error(err))
		}
	} else {
		logger.Info("RABBITMQ_URL is not set, order events are disabled")
	}

	// --- Service and HTTP app ---
	service := services.NewOrderService(repo, publisher, logger)
	app := newApp(service, logger, publisher != nil)

	// --- Start HTTP Server ---
	logger.Info("Starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
	}

	logger.Info("Server gracefully stopped")
}

// newApp builds the Fiber app with the API routes, health check and metrics endpoint.
func newApp(service *services.OrderService, logger *zap.Logger, eventsEnabled bool) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "ordersys"})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(fiberlogger.New()) // Request logger

	// --- API Routes ---
	handlers.RegisterRoutes(app.Group("/api/v1"), service, logger)

	// --- Health Check Endpoint ---
	events := "disabled"
	if eventsEnabled {
		events = "enabled"
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": events,
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

// logOrderEvent returns the consumer handler for order events. Events are only logged;
// downstream processing such as notifications would hook in here.
func logOrderEvent(logger *zap.Logger) rabbitmq.OrderEventHandler {
	return func(event models.OrderCreatedEvent) error {
		logger.Info("Received order event",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Int64("order_id", event.OrderID),
			zap.Int64("user_id", event.UserID),
			zap.Float64("total_amount", event.TotalAmount))
		return nil
	}
}
