package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func fileRoutes(app *fiber.App) {
	files := app.Group("/files")
	files.Use(middleware.AuthJWT)

	files.Post("/upload", middleware.RequireAction(authz.ActionFilesUpload), controllers.UploadMeetingFile)
	files.Get("/meeting/:meetingId", controllers.GetMeetingFiles)
	files.Delete("/:id", middleware.RequireAction(authz.ActionFilesDelete), controllers.DeleteMeetingFile)
}
