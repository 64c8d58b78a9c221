package middleware

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

// RequireAction gates a route on the authz policy table. Must run after AuthJWT.
func RequireAction(action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !authz.Can(role, action) {
			return c.Status(fiber.StatusInternalServerError).
				JSON(models.NewErrorEnvelope("PERMISSION_DENIED", "Permission denied for "+string(action)))
		}
		return c.Next()
	}
}
