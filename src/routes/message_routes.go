package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func messageRoutes(app *fiber.App) {
	messages := app.Group("/messages")
	messages.Use(middleware.AuthJWT)

	messages.Post("/", controllers.SendPrivateMessage)
	messages.Post("/broadcast", middleware.RequireAction(authz.ActionMessagesBroadcast), controllers.BroadcastMessage)
	messages.Get("/unread-count", controllers.GetUnreadCount)
	messages.Get("/:userId", controllers.GetConversation)
	messages.Put("/:userId/read", controllers.MarkConversationRead)
}
