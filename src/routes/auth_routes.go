package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", controllers.LoginUser)                      // 🔐 login
	auth.Get("/me", middleware.AuthJWT, controllers.GetCurrentUser) // current account
}
