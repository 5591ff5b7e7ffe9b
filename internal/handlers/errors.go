package handlers

import (
	"fmt"

	"ordersys/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusFor maps a domain error kind to its HTTP status.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindBusinessRule:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a JSON response. Domain errors are returned to the caller
// as-is; anything else is logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, logger *zap.Logger, action string, err error) error {
	if kind, ok := apperr.KindOf(err); ok {
		return c.Status(statusFor(kind)).JSON(fiber.Map{
			"message": err.Error(),
			"error":   kind.String(),
		})
	}

	logger.Error("Request failed",
		zap.String("action", action),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("Could not %s", action),
		"error":   "internal",
	})
}

// parseBody binds the request body into req and validates it. It returns the response
// body to send with 400 when either step fails, and nil otherwise.
func parseBody(c *fiber.Ctx, validate *validator.Validate, req interface{}) fiber.Map {
	if err := c.BodyParser(req); err != nil {
		return fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		}
	}

	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			}
		}
		errorMessages := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			errorMessages[e.Namespace()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		}
	}
	return nil
}

// paramID reads the ":id" route parameter. When it is not an integer, the 400 response has
// already been written and ok is false.
func paramID(c *fiber.Ctx) (id int64, ok bool, err error) {
	n, parseErr := c.ParamsInt("id")
	if parseErr != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Invalid id %q", c.Params("id")),
		})
	}
	return int64(n), true, nil
}
