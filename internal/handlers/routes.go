package handlers

import (
	"ordersys/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the user, product and order routes on router.
func RegisterRoutes(router fiber.Router, service *services.OrderService, logger *zap.Logger) {
	NewUserHandler(service, logger).RegisterRoutes(router)
	NewProductHandler(service, logger).RegisterRoutes(router)
	NewOrderHandler(service, logger).RegisterRoutes(router)
}
