package handlers

import (
	"ordersys/internal/models"
	"ordersys/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest represents the request body for order creation.
// An empty item list and non-positive quantities are rejected by the service.
type CreateOrderRequest struct {
	UserID int64              `json:"user_id" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"dive"`
	Status string             `json:"status" validate:"max=64"`
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,max=64"`
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if resp := parseBody(c, h.validate, &req); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	items := make([]models.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.service.CreateOrder(req.UserID, items, req.Status)
	if err != nil {
		return respondError(c, h.logger, "create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders retrieves all orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		return respondError(c, h.logger, "retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrder retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return respondError(c, h.logger, "retrieve order", err)
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}

	var req UpdateOrderStatusRequest
	if resp := parseBody(c, h.validate, &req); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	order, err := h.service.UpdateOrderStatus(id, req.Status)
	if err != nil {
		return respondError(c, h.logger, "update order status", err)
	}
	return c.JSON(order)
}
