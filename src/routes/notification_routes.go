package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications")
	notifications.Use(middleware.AuthJWT)

	notifications.Get("/", controllers.GetMyNotifications)
	notifications.Put("/:id/read", controllers.MarkNotificationRead)
	notifications.Post("/", middleware.RequireAction(authz.ActionNotificationsSend), controllers.CreateNotification)
	notifications.Post("/meeting-notice", middleware.RequireAction(authz.ActionNotificationsSend), controllers.SendMeetingNotice)
}
