package routes

import (
	"party-meeting-backend/src/controllers"
	"party-meeting-backend/src/middleware"
	"party-meeting-backend/src/services/authz"

	"github.com/gofiber/fiber/v2"
)

func memberRoutes(app *fiber.App) {
	members := app.Group("/members")
	members.Use(middleware.AuthJWT)

	members.Get("/", controllers.GetMembers)
	members.Get("/:userId", controllers.GetMember)
	members.Post("/", middleware.RequireAction(authz.ActionMembersCreate), controllers.CreateMember)
	members.Put("/:userId", middleware.RequireAction(authz.ActionMembersUpdate), controllers.UpdateMember)
	members.Delete("/:userId", middleware.RequireAction(authz.ActionMembersDelete), controllers.DeleteMember)
	members.Post("/:userId/reset-password", middleware.RequireAction(authz.ActionMembersUpdate), controllers.ResetMemberPassword)
}
