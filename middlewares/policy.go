package middlewares

import (
	"mystorx-api/models"
	"mystorx-api/responses"

	"github.com/gofiber/fiber/v2"
)

// Require returns a middleware rejecting callers whose role cannot perform
// the action. Must run after AuthMiddleware.
func Require(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok || !models.Can(user.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
				Status:  fiber.StatusForbidden,
				Message: "Access denied",
			})
		}
		return c.Next()
	}
}
