package controllers

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/members"
	"party-meeting-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateMember godoc
// @Summary  Create a party member (super admin only)
// @Tags     members
// @Accept   json
// @Produce  json
// @Param    member body members.CreateMemberInput true "Member"
// @Success  200 {object} models.SuccessResponse
// @Failure  500 {object} models.ErrorEnvelope
// @Security BearerAuth
// @Router   /members [post]
func CreateMember(c *fiber.Ctx) error {
	var input members.CreateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEMBER_FAILED", "invalid request body"))
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEMBER_FAILED", err.Error()))
	}

	user, profile, err := members.CreateMember(input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEMBER_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"user":    user,
		"profile": profile,
	}})
}

// GetMembers lists the roster with pagination and search.
func GetMembers(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_MEMBERS_FAILED", "invalid query parameters"))
	}
	params.Normalize()

	result, err := members.GetMembers(c.Query("organizationId"), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_MEMBERS_FAILED", err.Error()))
	}
	return c.JSON(result)
}

// GetMember fetches one member profile by account id.
func GetMember(c *fiber.Ctx) error {
	profile, err := members.GetMemberByUserID(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("GET_MEMBER_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": profile})
}

// UpdateMember applies a partial profile update.
func UpdateMember(c *fiber.Ctx) error {
	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEMBER_FAILED", "invalid request body"))
	}

	if err := members.UpdateMember(c.Params("userId"), updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEMBER_FAILED", err.Error()))
	}

	profile, err := members.GetMemberByUserID(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEMBER_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": profile})
}

// DeleteMember removes a member and their account.
func DeleteMember(c *fiber.Ctx) error {
	if err := members.DeleteMember(c.Params("userId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("DELETE_MEMBER_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// ResetMemberPassword sets a new password on a member's account.
func ResetMemberPassword(c *fiber.Ctx) error {
	type request struct {
		NewPassword string `json:"newPassword"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil || req.NewPassword == "" {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("RESET_PASSWORD_FAILED", "newPassword is required"))
	}

	if err := members.ResetPassword(c.Params("userId"), req.NewPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("RESET_PASSWORD_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reset": true}})
}
