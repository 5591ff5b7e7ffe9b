package handlers

import (
	"ordersys/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.OrderService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleRegisterProduct)
}

// RegisterProductRequest represents the request body for product registration.
// Price and stock rules are enforced by the service.
type RegisterProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// HandleRegisterProduct registers a new product.
func (h *ProductHandler) HandleRegisterProduct(c *fiber.Ctx) error {
	var req RegisterProductRequest
	if resp := parseBody(c, h.validate, &req); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	product, err := h.service.RegisterProduct(req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return respondError(c, h.logger, "register product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleListProducts retrieves all products.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, h.logger, "retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, h.logger, "retrieve product", err)
	}
	return c.JSON(product)
}
