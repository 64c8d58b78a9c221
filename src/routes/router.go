package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes wires every module's routes onto the app.
func InitRoutes(app *fiber.App) {
	authRoutes(app)
	memberRoutes(app)
	meetingRoutes(app)
	statisticsRoutes(app)
	notificationRoutes(app)
	messageRoutes(app)
	fileRoutes(app)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
