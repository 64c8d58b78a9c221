package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func meetingRoutes(app *fiber.App) {
	meetings := app.Group("/meetings")
	meetings.Use(middleware.AuthJWT)

	meetings.Get("/", controllers.GetMeetings)
	meetings.Get("/:id", controllers.GetMeetingByID)
	meetings.Post("/", middleware.RequireAction(authz.ActionMeetingsManage), controllers.CreateMeeting)
	meetings.Put("/:id", middleware.RequireAction(authz.ActionMeetingsManage), controllers.UpdateMeeting)
	meetings.Delete("/:id", middleware.RequireAction(authz.ActionMeetingsManage), controllers.DeleteMeeting)

	// participants + attendance
	meetings.Get("/:id/participants", controllers.GetParticipants)
	meetings.Post("/:id/participants", middleware.RequireAction(authz.ActionMeetingsManage), controllers.AddParticipants)
	meetings.Delete("/:id/participants/:userId", middleware.RequireAction(authz.ActionMeetingsManage), controllers.RemoveParticipant)
	meetings.Post("/:id/sign-in", controllers.SignInMeeting)
}
