package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func statisticsRoutes(app *fiber.App) {
	stats := app.Group("/statistics")
	stats.Use(middleware.AuthJWT)

	stats.Post("/generate", middleware.RequireAction(authz.ActionStatsGenerate), controllers.GenerateStatistics)
}
