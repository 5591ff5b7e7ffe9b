package handlers

import (
	"ordersys/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.OrderService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Post("/", h.HandleRegisterUser)
}

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,max=254"`
}

// HandleRegisterUser registers a new user.
func (h *UserHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if resp := parseBody(c, h.validate, &req); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	user, err := h.service.RegisterUser(req.Name, req.Email)
	if err != nil {
		return respondError(c, h.logger, "register user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleListUsers retrieves all users.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return respondError(c, h.logger, "retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUser retrieves a single user by its ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		return respondError(c, h.logger, "retrieve user", err)
	}
	return c.JSON(user)
}
